package layer

import (
	"fmt"
	"strings"
)

// Kind classifies what a layer holds. It is fixed at creation.
type Kind int

const (
	KindIcon Kind = iota
	KindShape
	KindText
	KindBackground
	KindSticker
)

// Kinds lists every declared Kind.
var Kinds = []Kind{KindIcon, KindShape, KindText, KindBackground, KindSticker}

var kindNames = map[Kind]string{
	KindIcon:       "icon",
	KindShape:      "shape",
	KindText:       "text",
	KindBackground: "background",
	KindSticker:    "sticker",
}

func (k Kind) String() string {
	if n, ok := kindNames[k]; ok {
		return n
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// ParseKind parses a kind name as printed by Kind.String. Plural forms are
// accepted.
func ParseKind(s string) (Kind, error) {
	name := strings.TrimSuffix(strings.ToLower(strings.TrimSpace(s)), "s")
	for _, k := range Kinds {
		if kindNames[k] == name {
			return k, nil
		}
	}
	return 0, fmt.Errorf("unknown layer kind %q", s)
}

// SettingsKind identifies the adjustment panel the editor shows for a layer.
type SettingsKind int

const (
	SettingsTextAdjustment SettingsKind = iota
	SettingsIconsAdjustment
	SettingsShapesMaskAdjustment
)

func (s SettingsKind) String() string {
	switch s {
	case SettingsIconsAdjustment:
		return "icons-adjustment"
	case SettingsShapesMaskAdjustment:
		return "shapes-mask-adjustment"
	}
	return "text-adjustment"
}

// Settings maps the kind to its adjustment panel. Kinds without a dedicated
// panel use the text adjustment panel.
func (k Kind) Settings() SettingsKind {
	switch k {
	case KindIcon:
		return SettingsIconsAdjustment
	case KindShape:
		return SettingsShapesMaskAdjustment
	case KindText, KindBackground, KindSticker:
		return SettingsTextAdjustment
	}
	return SettingsTextAdjustment
}

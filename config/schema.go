// Package config describes the parameters of one card generation run.
//
// Parameters arrive as an Input, expressed in the units a person filling in a
// form would use (points for strokes and fonts, tenths of a millimeter for the
// card size). New checks an Input against the canonical range table and
// resolves it into an immutable Config used by the layout and render packages.
//
// Inputs can also be read from YAML or JSON files:
//
//	pageCount: 6
//	fontSize: 30
//	outerBorder: 4
//	innerBorder: 2
//	borderSpacing: 3
//	cardWidthTenths: 1965
//	cardHeightTenths: 657
//	verticalSpacing: 20
//	dateTimeFontSize: 3
//	numberFontSize: 8
//	footerMargin: 5
//	fontFamily: Helvetica
//	fontStyle: bold
package config

// Input is the raw, user-facing form of a generation run.
type Input struct {
	PageCount        int    `yaml:"pageCount" json:"pageCount"`
	FontSize         int    `yaml:"fontSize" json:"fontSize"`                 // pt, numbers inside cells
	OuterBorder      int    `yaml:"outerBorder" json:"outerBorder"`           // pt
	InnerBorder      int    `yaml:"innerBorder" json:"innerBorder"`           // pt
	BorderSpacing    int    `yaml:"borderSpacing" json:"borderSpacing"`       // pt between the two frames
	CardWidthTenths  int    `yaml:"cardWidthTenths" json:"cardWidthTenths"`   // 0.1 mm
	CardHeightTenths int    `yaml:"cardHeightTenths" json:"cardHeightTenths"` // 0.1 mm
	VerticalSpacing  int    `yaml:"verticalSpacing" json:"verticalSpacing"`   // pt between cards
	DateTimeFontSize int    `yaml:"dateTimeFontSize" json:"dateTimeFontSize"` // pt
	NumberFontSize   int    `yaml:"numberFontSize" json:"numberFontSize"`     // pt, card sequence number
	FooterMargin     int    `yaml:"footerMargin" json:"footerMargin"`         // pt above the card's bottom edge, may be negative
	FontFamily       string `yaml:"fontFamily" json:"fontFamily"`             // Helvetica, Arial, Times New Roman, Courier
	FontStyle        string `yaml:"fontStyle,omitempty" json:"fontStyle,omitempty"`

	// Optional extras.
	Barcode      string `yaml:"barcode,omitempty" json:"barcode,omitempty"` // none, qr, code128, pdf417
	BarcodeSize  int    `yaml:"barcodeSize,omitempty" json:"barcodeSize,omitempty"`
	ControlSheet bool   `yaml:"controlSheet,omitempty" json:"controlSheet,omitempty"`
	Background   string `yaml:"background,omitempty" json:"background,omitempty"` // PDF stamped under every card page
	Title        string `yaml:"title,omitempty" json:"title,omitempty"`
}

// DefaultTitle is used when an Input carries no title.
const DefaultTitle = "Russian Lotto cards"

// DefaultInput returns the parameters used when nothing else is specified.
func DefaultInput() Input {
	return Input{
		PageCount:        6,
		FontSize:         30,
		OuterBorder:      4,
		InnerBorder:      2,
		BorderSpacing:    3,
		CardWidthTenths:  1965,
		CardHeightTenths: 657,
		VerticalSpacing:  20,
		DateTimeFontSize: 3,
		NumberFontSize:   8,
		FooterMargin:     5,
		FontFamily:       string(FamilyHelvetica),
		FontStyle:        string(StylePlain),
		Barcode:          string(BarcodeNone),
		BarcodeSize:      24,
		Title:            DefaultTitle,
	}
}

package config

import (
	"fmt"
	"strings"
)

// Family is one of the font families a card can be printed in.
type Family string

const (
	FamilyHelvetica     Family = "Helvetica"
	FamilyArial         Family = "Arial"
	FamilyTimesNewRoman Family = "Times New Roman"
	FamilyCourier       Family = "Courier"
)

// Families lists the supported families in presentation order.
var Families = []Family{FamilyHelvetica, FamilyArial, FamilyTimesNewRoman, FamilyCourier}

// Style is the variant of a family: plain, bold, italic or bold-italic.
type Style string

const (
	StylePlain      Style = "plain"
	StyleBold       Style = "bold"
	StyleItalic     Style = "italic"
	StyleBoldItalic Style = "bold-italic"
)

// Font is a family and style pair.
type Font struct {
	Family Family
	Style  Style
}

// DefaultFont is the face used when the requested one cannot be embedded.
var DefaultFont = Font{Family: FamilyHelvetica, Style: StylePlain}

func (f Font) String() string {
	if f.Style == StylePlain || f.Style == "" {
		return string(f.Family)
	}
	return string(f.Family) + " " + string(f.Style)
}

// ParseFamily resolves a family name. Matching ignores case and surrounding
// space; "Times" is accepted for Times New Roman.
func ParseFamily(s string) (Family, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "helvetica":
		return FamilyHelvetica, nil
	case "arial":
		return FamilyArial, nil
	case "times new roman", "times", "timesnewroman", "times-roman":
		return FamilyTimesNewRoman, nil
	case "courier":
		return FamilyCourier, nil
	}
	return "", fmt.Errorf("%w: family %q", ErrUnknownFont, s)
}

// ParseStyle resolves a style name. The empty string is plain.
func ParseStyle(s string) (Style, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "plain", "regular", "normal":
		return StylePlain, nil
	case "bold", "b":
		return StyleBold, nil
	case "italic", "oblique", "i":
		return StyleItalic, nil
	case "bold-italic", "bolditalic", "bold italic", "bi", "ib":
		return StyleBoldItalic, nil
	}
	return "", fmt.Errorf("%w: style %q", ErrUnknownFont, s)
}

// Barcode selects the machine-readable code printed next to each card.
type Barcode string

const (
	BarcodeNone    Barcode = "none"
	BarcodeQR      Barcode = "qr"
	BarcodeCode128 Barcode = "code128"
	BarcodePDF417  Barcode = "pdf417"
)

// ParseBarcode resolves a barcode kind. The empty string is none.
func ParseBarcode(s string) (Barcode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "none", "off":
		return BarcodeNone, nil
	case "qr", "qrcode":
		return BarcodeQR, nil
	case "code128", "128":
		return BarcodeCode128, nil
	case "pdf417":
		return BarcodePDF417, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownBarcode, s)
}

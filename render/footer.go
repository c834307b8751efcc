package render

import (
	"fmt"
	"strconv"
	"time"

	"github.com/lvillar/lottopdf/config"
)

// Footer label placement constants, in points.
const (
	footerCenterShift = 5 // date-time segment sits this far left of true center
	footerGap         = 3 // between the date-time and number segments
)

// Footer is the label printed under a card: a timestamp followed by the
// card's sequence number.
type Footer struct {
	DateTime  string
	Number    string
	DateTimeX float64
	NumberX   float64
	Y         float64 // shared baseline
}

// NewFooter lays out the footer of the card whose bottom-left corner is at
// (x, y). The baseline is FooterMargin above the card's bottom edge, so a
// negative margin puts the label below the card.
func NewFooter(m Metrics, face Face, c config.Config, x, y float64, seq int, now time.Time) Footer {
	dt := FormatTimestamp(now)
	dtWidth := m.StringWidth(face, dt, c.DateTimeFontSize)
	dtX := x + (c.CardWidth-dtWidth)/2 - footerCenterShift
	return Footer{
		DateTime:  dt,
		Number:    " " + strconv.Itoa(seq),
		DateTimeX: dtX,
		NumberX:   dtX + dtWidth + footerGap,
		Y:         y + c.FooterMargin,
	}
}

// FormatTimestamp renders t as YYYYMMDDHHMMSSmmm.
func FormatTimestamp(t time.Time) string {
	return fmt.Sprintf("%04d%02d%02d%02d%02d%02d%03d",
		t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(), t.Nanosecond()/int(time.Millisecond))
}

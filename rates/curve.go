// SPDX-License-Identifier: MIT

package rates

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"
)

// Point is one (x, y) row of a curve.
type Point struct {
	X, Y float64
}

// Curve is a labelled two-column table.
type Curve struct {
	XLabel, YLabel string
	Points         []Point
}

// BERCurve returns the (snr, ber) curve of every record.
func BERCurve(records []Record) Curve {
	c := Curve{XLabel: "snr", YLabel: "ber", Points: make([]Point, 0, len(records))}
	for _, r := range records {
		c.Points = append(c.Points, Point{X: r.SNR, Y: r.BER()})
	}

	return c
}

// BLERCurve returns the (snr, bler) curve of the records admitted by g.
func BLERCurve(records []Record, g Gate) Curve {
	c := Curve{XLabel: "snr", YLabel: "bler"}
	for _, r := range records {
		if v, ok := r.BLER(g); ok {
			c.Points = append(c.Points, Point{X: r.SNR, Y: v})
		}
	}

	return c
}

// Shift maps every x to reference − x. Applied to an eavesdropper's curve
// with reference set to the legitimate receiver's operating SNR, it turns
// the x axis into the SNR disadvantage of the eavesdropper.
func (c Curve) Shift(reference float64) Curve {
	out := Curve{XLabel: c.XLabel, YLabel: c.YLabel, Points: make([]Point, len(c.Points))}
	for i, p := range c.Points {
		out.Points[i] = Point{X: reference - p.X, Y: p.Y}
	}

	return out
}

// MapX applies f to every x, stopping at the first error.
func (c Curve) MapX(label string, f func(float64) (float64, error)) (Curve, error) {
	out := Curve{XLabel: label, YLabel: c.YLabel, Points: make([]Point, len(c.Points))}
	for i, p := range c.Points {
		x, err := f(p.X)
		if err != nil {
			return Curve{}, fmt.Errorf("MapX: x=%v: %w", p.X, err)
		}
		out.Points[i] = Point{X: x, Y: p.Y}
	}

	return out, nil
}

// Sort orders the points ascending by x; ties keep their input order.
func (c Curve) Sort() {
	sort.SliceStable(c.Points, func(i, j int) bool { return c.Points[i].X < c.Points[j].X })
}

// WriteCSV writes the header row and one row per point, floats in their
// shortest round-trip form.
func (c Curve) WriteCSV(w io.Writer) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{c.XLabel, c.YLabel}); err != nil {
		return err
	}
	for _, p := range c.Points {
		if err := cw.Write([]string{formatFloat(p.X), formatFloat(p.Y)}); err != nil {
			return err
		}
	}
	cw.Flush()

	return cw.Error()
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// ReadCurve parses a two-column CSV. The first row is taken as the header
// when its first field is not numeric; otherwise the labels default to x,y.
func ReadCurve(r io.Reader) (Curve, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	c := Curve{XLabel: "x", YLabel: "y"}
	for first := true; ; first = false {
		fields, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return Curve{}, fmt.Errorf("%v: %w", err, ErrMalformedCurve)
		}
		line, _ := cr.FieldPos(0)
		if len(fields) < 2 {
			return Curve{}, lineErrorf(line, ErrMalformedCurve)
		}
		if first && isHeader(fields) {
			c.XLabel, c.YLabel = strings.TrimSpace(fields[0]), strings.TrimSpace(fields[1])
			continue
		}
		x, errX := strconv.ParseFloat(strings.TrimSpace(fields[0]), 64)
		y, errY := strconv.ParseFloat(strings.TrimSpace(fields[1]), 64)
		if errX != nil || errY != nil {
			return Curve{}, lineErrorf(line, ErrMalformedCurve)
		}
		c.Points = append(c.Points, Point{X: x, Y: y})
	}

	return c, nil
}

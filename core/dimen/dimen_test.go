package dimen

import (
	"testing"

	"github.com/npillmayer/notensatz/core"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestParseDimen(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "notensatz.core")
	defer teardown()
	//
	d, err := ParseDimen("12px")
	if err != nil {
		t.Errorf("(1) %s", err.Error())
	} else if d != 12*PX {
		t.Errorf("(1) expected d to be 12px (%d), is %d", 12*PX, d)
	}
	//
	d, err = ParseDimen("0")
	if err != nil {
		t.Errorf("(2) %s", err.Error())
	} else if d != 0 {
		t.Errorf("(2) expected d to be 0, is %d", d)
	}
	//
	d, err = ParseDimen("2.5mm")
	if err != nil {
		t.Errorf("(3) %s", err.Error())
	} else if px := d.Pixels(); px < 9.44 || px > 9.45 {
		t.Errorf("(3) expected 2.5mm to be about 9.45px, is %.3f", px)
	}
	//
	_, err = ParseDimen("12furlongs")
	if core.Code(err) != core.EINVALID {
		t.Errorf("(4) expected parse error, got %v", err)
	}
}

func TestPixelRoundTrip(t *testing.T) {
	for _, px := range []float64{0, 1, 12.5, 104.25, -3} {
		if got := FromPixels(px).Pixels(); got != px {
			t.Errorf("expected %g px, got %g", px, got)
		}
	}
	if got := (72 * PT).Pixels(); got < 95.99 || got > 96.01 {
		t.Errorf("expected 72pt to be 96px, is %g", got)
	}
}

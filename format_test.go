package rgb565

import (
	"encoding/binary"
	"errors"
	"testing"
)

func TestFormatInfo(t *testing.T) {
	tests := []struct {
		f      Format
		name   string
		order  Order
		endian Endian
	}{
		{FormatRGB565LE, "rgb565le", OrderRGB, LittleEndian},
		{FormatRGB565BE, "rgb565be", OrderRGB, BigEndian},
		{FormatBGR565LE, "bgr565le", OrderBGR, LittleEndian},
		{FormatBGR565BE, "bgr565be", OrderBGR, BigEndian},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.f.String() != tt.name {
				t.Errorf("String() = %q", tt.f.String())
			}
			if tt.f.Order() != tt.order || tt.f.Endian() != tt.endian {
				t.Errorf("Order/Endian = %v/%v, want %v/%v", tt.f.Order(), tt.f.Endian(), tt.order, tt.endian)
			}
			if got := NewFormat(tt.order, tt.endian); got != tt.f {
				t.Errorf("NewFormat(%v, %v) = %v", tt.order, tt.endian, got)
			}
			if !tt.f.IsValid() {
				t.Error("IsValid() = false")
			}
		})
	}
}

func TestFormatInvalid(t *testing.T) {
	f := Format(42)
	if f.IsValid() {
		t.Error("Format(42).IsValid() = true")
	}
	if f.String() != "unknown" {
		t.Errorf("String() = %q", f.String())
	}
	if f.Info() != (FormatInfo{}) {
		t.Errorf("Info() = %+v, want zero", f.Info())
	}
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in   string
		want Format
	}{
		{"rgb565le", FormatRGB565LE},
		{"RGB565BE", FormatRGB565BE},
		{" bgr565le ", FormatBGR565LE},
		{"bgr565be", FormatBGR565BE},
		{"rgb565", FormatRGB565LE},
		{"BGR565", FormatBGR565LE},
	}
	for _, tt := range tests {
		got, err := ParseFormat(tt.in)
		if err != nil || got != tt.want {
			t.Errorf("ParseFormat(%q) = %v, %v; want %v", tt.in, got, err, tt.want)
		}
	}
	if _, err := ParseFormat("rgb888"); !errors.Is(err, ErrUnknownFormat) {
		t.Errorf("ParseFormat(rgb888) error = %v, want ErrUnknownFormat", err)
	}
}

func TestEndianByteOrder(t *testing.T) {
	if LittleEndian.ByteOrder() != binary.ByteOrder(binary.LittleEndian) {
		t.Error("LittleEndian.ByteOrder() is not binary.LittleEndian")
	}
	if BigEndian.ByteOrder() != binary.ByteOrder(binary.BigEndian) {
		t.Error("BigEndian.ByteOrder() is not binary.BigEndian")
	}
	if LittleEndian.String() != "LE" || BigEndian.String() != "BE" {
		t.Error("Endian.String() mismatch")
	}
	if OrderRGB.String() != "RGB" || OrderBGR.String() != "BGR" {
		t.Error("Order.String() mismatch")
	}
}

func TestReadWriteUint16(t *testing.T) {
	b := [2]byte{0x34, 0x12}
	if got := FormatRGB565LE.readUint16(b); got != 0x1234 {
		t.Errorf("LE read = %#04x", got)
	}
	if got := FormatBGR565BE.readUint16(b); got != 0x3412 {
		t.Errorf("BE read = %#04x", got)
	}
	if got := FormatRGB565BE.writeUint16(0x1234); got != [2]byte{0x12, 0x34} {
		t.Errorf("BE write = %x", got)
	}
}

package qr

import (
	"bytes"
	"image/color"
	"image/png"

	"github.com/fogleman/gg"
	"github.com/nfnt/resize"
	"github.com/skip2/go-qrcode"
)

// Config describes a QR code render. LogoPath is optional; when set, the
// logo is drawn as a circle over the center of the code, which is why the
// recovery level defaults to the highest setting.
type Config struct {
	Content       string
	LogoPath      string
	Size          int
	LogoScale     float64
	Background    color.Color
	Foreground    color.Color
	RecoveryLevel int
}

// Default is the render used for invitation join links.
var Default = Config{
	Size:          512,
	LogoScale:     0.2,
	Background:    color.White,
	Foreground:    color.Black,
	RecoveryLevel: int(qrcode.Highest),
}

// Generate renders the QR code and returns it as PNG bytes.
func (c *Config) Generate() ([]byte, error) {
	code, err := qrcode.New(c.Content, qrcode.RecoveryLevel(c.RecoveryLevel))
	if err != nil {
		return nil, err
	}
	code.BackgroundColor = colorOrDefault(c.Background, color.White)
	code.ForegroundColor = colorOrDefault(c.Foreground, color.Black)

	dc := gg.NewContext(c.Size, c.Size)
	dc.DrawImage(code.Image(c.Size), 0, 0)

	if c.LogoPath != "" {
		logo, errLogo := gg.LoadImage(c.LogoPath)
		if errLogo != nil {
			return nil, errLogo
		}
		logoSize := int(float64(c.Size) * c.LogoScale)
		resized := resize.Resize(uint(logoSize), uint(logoSize), logo, resize.Lanczos3)

		center := float64(c.Size) / 2
		radius := float64(logoSize) / 2

		// Clear a circular area so the logo never sits on live modules.
		dc.SetColor(code.BackgroundColor)
		dc.DrawCircle(center, center, radius+4)
		dc.Fill()

		dc.DrawCircle(center, center, radius)
		dc.Clip()
		dc.DrawImage(resized, (c.Size-logoSize)/2, (c.Size-logoSize)/2)
		dc.ResetClip()
	}

	var buf bytes.Buffer
	if err = png.Encode(&buf, dc.Image()); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func colorOrDefault(c color.Color, fallback color.Color) color.Color {
	if c == nil {
		return fallback
	}
	return c
}

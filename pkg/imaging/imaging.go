// Package imaging shrinks uploaded photos before they are stored.
package imaging

import (
	"bytes"
	"encoding/base64"
	"errors"
	"fmt"
	"image"
	"image/jpeg"
	_ "image/png" // регистрирует декодер png
	"strings"

	"go.uber.org/zap"
	"golang.org/x/image/draw"
)

const (
	MaxWidth  = 600
	MaxHeight = 600
	Quality   = 60

	dataURLPrefix = "data:image/jpeg;base64,"
)

var errNotImage = errors.New("payload is not an image")

// Compress fits the image into maxW x maxH keeping its aspect ratio and
// re-encodes it as a JPEG data URL. Any payload that cannot be processed is
// returned unchanged.
func Compress(payload string, maxW, maxH int) string {
	if payload == "" {
		return payload
	}
	out, err := compress(payload, maxW, maxH)
	if err != nil {
		zap.L().Debug("image left as is", zap.Error(err))
		return payload
	}
	return out
}

func compress(payload string, maxW, maxH int) (string, error) {
	raw, err := decodePayload(payload)
	if err != nil {
		return "", err
	}
	src, _, err := image.Decode(bytes.NewReader(raw))
	if err != nil {
		return "", fmt.Errorf("decode image: %w", err)
	}

	w, h := fit(src.Bounds().Dx(), src.Bounds().Dy(), maxW, maxH)
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(dst, dst.Bounds(), image.White, image.Point{}, draw.Src)
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Over, nil)

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, dst, &jpeg.Options{Quality: Quality}); err != nil {
		return "", fmt.Errorf("encode jpeg: %w", err)
	}
	return dataURLPrefix + base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}

func decodePayload(payload string) ([]byte, error) {
	data := payload
	if strings.HasPrefix(payload, "data:") {
		i := strings.Index(payload, ",")
		if i < 0 || !strings.Contains(payload[:i], ";base64") {
			return nil, errNotImage
		}
		data = payload[i+1:]
	}
	raw, err := base64.StdEncoding.DecodeString(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errNotImage, err)
	}
	return raw, nil
}

// fit scales w x h down so that it fits the box. Images already inside the
// box keep their size.
func fit(w, h, maxW, maxH int) (int, int) {
	if w <= maxW && h <= maxH {
		return w, h
	}
	if w*maxH > h*maxW {
		return maxW, max(1, h*maxW/w)
	}
	return max(1, w*maxH/h), maxH
}

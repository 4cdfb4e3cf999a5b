package convert

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"image"
	"io"
	"os"
	"strings"

	"driftfield/internal/utils"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/mauserzjeh/dxt"
	"github.com/pierrec/lz4/v4"
)

func readUint32(r io.Reader) uint32 {
	var v uint32
	binary.Read(r, binary.LittleEndian, &v)
	return v
}

func readFixedString(r io.Reader, n int) string {
	b := make([]byte, n)
	r.Read(b)
	return string(bytes.Trim(b, "\x00"))
}

// LoadSpriteTexture loads a sprite image for the renderer. Plain image files
// go straight to raylib; Wallpaper Engine .tex containers are decoded first.
func LoadSpriteTexture(path string) (rl.Texture2D, error) {
	if strings.HasSuffix(path, ".tex") {
		img, err := DecodeTexToImage(path)
		if err != nil {
			return rl.Texture2D{}, err
		}
		rlImg := rl.NewImageFromImage(img)
		defer rl.UnloadImage(rlImg)
		return rl.LoadTextureFromImage(rlImg), nil
	}

	tex := rl.LoadTexture(path)
	if tex.ID == 0 {
		return rl.Texture2D{}, fmt.Errorf("failed to load texture: %s", path)
	}
	return tex, nil
}

// DecodeTexToImage decodes the first mipmap of the first image in a
// TEXV0005 container: optional LZ4 block compression, then DXT1, DXT5,
// R8, or raw RGBA pixel data.
func DecodeTexToImage(path string) (image.Image, error) {
	utils.Debug("Decoding texture: %s", path)
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	magic := readFixedString(f, 8)
	f.Seek(1, io.SeekCurrent)
	_ = readFixedString(f, 8)
	f.Seek(1, io.SeekCurrent)

	if magic != "TEXV0005" {
		return nil, fmt.Errorf("invalid magic: %s", magic)
	}

	format := readUint32(f)
	f.Seek(4, io.SeekCurrent)
	_ = readUint32(f)
	_ = readUint32(f)
	imgW := readUint32(f)
	imgH := readUint32(f)

	readUint32(f)
	containerMagic := readFixedString(f, 8)
	f.Seek(1, io.SeekCurrent)
	imageCount := readUint32(f)

	if containerMagic == "TEXB0003" {
		readUint32(f)
	}

	for i := uint32(0); i < imageCount; i++ {
		mipmapCount := readUint32(f)
		for j := uint32(0); j < mipmapCount; j++ {
			mW := readUint32(f)
			mH := readUint32(f)
			var isLZ4 bool
			var decompressedSize uint32
			if containerMagic != "TEXB0001" {
				isLZ4 = readUint32(f) == 1
				decompressedSize = readUint32(f)
			}
			dataSize := readUint32(f)
			data := make([]byte, dataSize)
			if _, err := io.ReadFull(f, data); err != nil {
				return nil, err
			}

			if i != 0 || j != 0 {
				continue
			}

			if isLZ4 {
				utils.Debug("    LZ4 block: %d -> %d bytes", dataSize, decompressedSize)
				decoded := make([]byte, decompressedSize)
				if _, err := lz4.UncompressBlock(data, decoded); err != nil {
					return nil, err
				}
				data = decoded
			}

			pix, err := decodePixels(data, format, mW, mH)
			if err != nil {
				return nil, err
			}

			rgba := &image.RGBA{
				Pix:    pix,
				Stride: int(mW * 4),
				Rect:   image.Rect(0, 0, int(mW), int(mH)),
			}
			return rgba.SubImage(image.Rect(0, 0, int(imgW), int(imgH))), nil
		}
	}
	return nil, fmt.Errorf("no image data in texture: %s", path)
}

func decodePixels(data []byte, format, w, h uint32) ([]byte, error) {
	blocksW := (w + 3) / 4
	blocksH := (h + 3) / 4
	expectedDXT1 := blocksW * blocksH * 8
	expectedDXT5 := blocksW * blocksH * 16
	expectedRGBA := w * h * 4

	switch {
	case uint32(len(data)) == expectedRGBA:
		utils.Debug("    Type: RGBA")
		return data, nil
	case uint32(len(data)) == expectedDXT5 || format == 6:
		utils.Debug("    Type: DXT5")
		return dxt.DecodeDXT5(data, uint(w), uint(h))
	case uint32(len(data)) == expectedDXT1 || format == 4 || format == 7:
		utils.Debug("    Type: DXT1")
		return dxt.DecodeDXT1(data, uint(w), uint(h))
	case format == 9 && uint32(len(data)) == w*h:
		utils.Debug("    Type: R8 (grayscale)")
		pix := make([]byte, w*h*4)
		for k := 0; k < int(w*h); k++ {
			val := data[k]
			pix[k*4] = val
			pix[k*4+1] = val
			pix[k*4+2] = val
			pix[k*4+3] = 255
		}
		return pix, nil
	default:
		return nil, fmt.Errorf("unsupported format %d with size %d", format, len(data))
	}
}

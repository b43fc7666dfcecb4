package mggif

import "github.com/SchwartzKamel/mgGif/internal/container"

// Features describes a GIF file's logical screen and frame count, as
// returned by Probe.
type Features struct {
	Version      string
	Width        int
	Height       int
	FrameCount   int
	HasAnimation bool
	LoopCount    int
	HasLoopCount bool
}

// Probe walks data's block structure, counting image frames and checking
// for a Netscape loop-count extension, without running the LZW engine
// over any frame's pixel data. This is much cheaper than decoding every
// frame when a caller only wants dimensions or a frame count, mirroring
// deepteams-webp's GetFeatures.
func Probe(data []byte) (Features, error) {
	sd, pos, err := container.ParseHeader(data)
	if err != nil {
		return Features{}, translate("parsing header", err)
	}
	feat := Features{Version: sd.Version, Width: sd.Width, Height: sd.Height}

	for {
		if pos >= len(data) {
			return Features{}, translate("reading block introducer", container.ErrTruncated)
		}
		introducer := data[pos]
		pos++

		switch introducer {
		case container.BlockTrailer:
			return feat, nil

		case container.BlockExtension:
			if pos >= len(data) {
				return Features{}, translate("reading extension label", container.ErrTruncated)
			}
			label := data[pos]
			pos++
			payload, next, err := container.ReadSubBlockChain(data, pos)
			if err != nil {
				return Features{}, translate("skipping extension", err)
			}
			pos = next
			if label == container.ExtApplication {
				if loop, ok := parseNetscapeLoop(payload); ok {
					feat.LoopCount = loop
					feat.HasLoopCount = true
				}
			}

		case container.BlockImage:
			id, next, err := container.ParseImageDescriptor(data, pos)
			if err != nil {
				return Features{}, translate("parsing image descriptor", err)
			}
			pos = next
			next, err = container.SkipImageData(data, pos)
			if err != nil {
				return Features{}, translate("skipping image data", err)
			}
			pos = next
			if id.Width == 0 || id.Height == 0 {
				continue
			}
			feat.FrameCount++
			if feat.FrameCount > 1 {
				feat.HasAnimation = true
			}

		default:
			return Features{}, translate("reading block introducer", container.ErrUnexpectedBlock)
		}
	}
}

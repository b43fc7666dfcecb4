package mggif

import (
	"errors"
	"fmt"

	"github.com/SchwartzKamel/mgGif/internal/bitio"
	"github.com/SchwartzKamel/mgGif/internal/container"
	"github.com/SchwartzKamel/mgGif/internal/lzw"
)

// Error kinds surfaced by Decoder and Probe. Callers match against these
// with errors.Is rather than inspecting error strings.
var (
	ErrInvalidHeader   = errors.New("mggif: invalid header")
	ErrUnexpectedBlock = errors.New("mggif: unexpected block introducer")
	ErrTruncated       = errors.New("mggif: truncated input")
	ErrMalformed       = errors.New("mggif: malformed input")
)

// translate maps an internal package error onto the matching public
// sentinel, wrapped with the stage that produced it, the way webp.Decode
// wraps container/lossless errors with "webp: <stage>: %w" at the package
// boundary. lzw.ErrBitstream does not distinguish its underlying
// truncation from a malformed sub-block (the LZW layer has no use for
// that distinction, since both simply abort the code stream); it is
// reported as Truncated, the more common cause.
func translate(stage string, err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, container.ErrBadSignature), errors.Is(err, container.ErrHeaderTooShort):
		return fmt.Errorf("mggif: %s: %w", stage, ErrInvalidHeader)
	case errors.Is(err, container.ErrUnexpectedBlock):
		return fmt.Errorf("mggif: %s: %w", stage, ErrUnexpectedBlock)
	case errors.Is(err, container.ErrMalformed), errors.Is(err, bitio.ErrMalformed):
		return fmt.Errorf("mggif: %s: %w", stage, ErrMalformed)
	case errors.Is(err, container.ErrTruncated), errors.Is(err, bitio.ErrTruncated), errors.Is(err, lzw.ErrBitstream):
		return fmt.Errorf("mggif: %s: %w", stage, ErrTruncated)
	default:
		return fmt.Errorf("mggif: %s: %w", stage, err)
	}
}

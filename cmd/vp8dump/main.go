// Command vp8dump decodes a raw VP8 lossy keyframe (the payload already
// extracted from its RIFF/WebP container, e.g. with `webpmux -get frame`)
// and writes its reconstructed planes to a planar I420 file. The core
// decoder crops only the height of the last macroblock row; every row keeps
// the full macroblock-grid width, so the dump is padded out in width only;
// the picture's true dimensions are printed to stderr.
//
// Usage:
//
//	vp8dump [-o out.yuv] <input.vp8>
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/go-vp8/vp8lossy/internal/lossy"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "vp8dump: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	fs := flag.NewFlagSet("vp8dump", flag.ContinueOnError)
	out := fs.String("o", "", "output .yuv path (default: stdout)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return fmt.Errorf("usage: vp8dump [-o out.yuv] <input.vp8>")
	}

	data, err := os.ReadFile(fs.Arg(0))
	if err != nil {
		return err
	}

	w := io.Writer(os.Stdout)
	if *out != "" {
		f, err := os.Create(*out)
		if err != nil {
			return err
		}
		defer f.Close()
		w = f
	}

	sink := &planarWriter{}
	dec := lossy.AcquireDecoder()
	defer lossy.ReleaseDecoder(dec)
	if err := dec.DecodeFrame(data, sink); err != nil {
		return err
	}

	fmt.Fprintf(os.Stderr, "vp8dump: decoded %dx%d, profile %d, %s filter\n",
		dec.Picture.Width, dec.Picture.Height, dec.Frame.Profile, filterName(dec.Filt))
	return sink.writeTo(w)
}

func filterName(f lossy.FilterHeader) string {
	switch {
	case f.Level == 0:
		return "no"
	case f.Simple:
		return "simple"
	default:
		return "normal"
	}
}

// planarWriter accumulates the decoded rows and writes them out as one
// planar I420 image (all Y rows, then all U, then all V) once the frame is
// complete. The per-row slices handed to EmitRow are views into the
// decoder's internal buffers and only valid for the duration of the call,
// so each is copied out as it arrives.
type planarWriter struct {
	y, u, v []byte
}

func (p *planarWriter) EmitRow(mbY int, y, u, v []byte, yStride, uvStride int) {
	p.y = append(p.y, y...)
	p.u = append(p.u, u...)
	p.v = append(p.v, v...)
}

func (p *planarWriter) writeTo(w io.Writer) error {
	for _, plane := range [][]byte{p.y, p.u, p.v} {
		if _, err := w.Write(plane); err != nil {
			return err
		}
	}
	return nil
}

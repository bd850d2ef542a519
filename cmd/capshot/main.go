/*
NAME
  capshot

DESCRIPTION
  capshot decodes one ARIB B24 caption PES payload plus a PTS and
  renders it to a PNG, for fixture inspection and manual verification
  of the decoder/render pipeline without a full demultiplexer.

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

// Package main implements capshot, a one-shot PES-to-PNG caption
// rasterizer used for fixture inspection.
package main

import (
	"flag"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"os"
	"strconv"

	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/ausocean/captionvid/caption"
	"github.com/ausocean/captionvid/decoder"
	"github.com/ausocean/captionvid/internal/logctx"
	"github.com/ausocean/captionvid/render"
	"github.com/ausocean/utils/logging"
)

// Logging configuration, matching the rest of this toolkit's CLI
// entry points.
const (
	logPath      = "capshot.log"
	logMaxSize   = 10 // MB
	logMaxBackup = 3
	logMaxAge    = 7 // days
	logVerbosity = logging.Info
	logSuppress  = true
)

func main() {
	pesFile := flag.String("pes", "", "path to a raw ARIB B24 PES caption payload")
	outFile := flag.String("out", "capshot.png", "PNG output path")
	ptsStr := flag.String("pts", "0", "presentation timestamp in milliseconds")
	frameW := flag.Int("w", 1280, "target video frame width")
	frameH := flag.Int("h", 720, "target video frame height")
	profile := flag.String("profile", "A", "writing format profile: A or C")
	flag.Parse()

	fileLog := &lumberjack.Logger{
		Filename:   logPath,
		MaxSize:    logMaxSize,
		MaxBackups: logMaxBackup,
		MaxAge:     logMaxAge,
	}
	log := logging.New(logVerbosity, io.MultiWriter(fileLog, os.Stderr), logSuppress)
	ctx := logctx.New(log)

	if *pesFile == "" {
		log.Fatal("capshot: -pes is required")
		return
	}
	data, err := os.ReadFile(*pesFile)
	if err != nil {
		log.Fatal("capshot: reading PES file failed", "error", err.Error())
		return
	}
	pts, err := strconv.ParseInt(*ptsStr, 10, 64)
	if err != nil {
		log.Fatal("capshot: invalid -pts", "error", err.Error())
		return
	}

	prof := decoder.ProfileA
	if *profile == "C" {
		prof = decoder.ProfileC
	}

	dec := decoder.New(ctx)
	if !dec.Initialize(decoder.EncodingAuto, decoder.CaptionTypeCaption, prof, decoder.LanguageFirst) {
		log.Fatal("capshot: decoder initialize failed")
		return
	}

	status, cp, err := dec.Decode(data, pts)
	if err != nil {
		log.Fatal("capshot: decode failed", "error", err.Error())
		return
	}
	if status != decoder.StatusGotCaption {
		log.Info("capshot: no caption decoded at this PTS")
		return
	}

	rend := render.New(ctx)
	if !rend.Initialize(decoder.CaptionTypeCaption, render.NullFontProvider, render.BasicTextRenderer) {
		log.Fatal("capshot: renderer initialize failed")
		return
	}
	if !rend.SetFrameSize(*frameW, *frameH) {
		log.Fatal("capshot: invalid frame size")
		return
	}
	if !rend.AppendCaption(cp) {
		log.Fatal("capshot: append caption failed")
		return
	}

	var out render.Output
	switch rend.Render(pts, &out) {
	case render.StatusGotImage, render.StatusGotImageUnchanged:
	default:
		log.Info("capshot: render produced no image")
		return
	}

	img := compositeFrame(*frameW, *frameH, out.Images)
	f, err := os.Create(*outFile)
	if err != nil {
		log.Fatal("capshot: creating output file failed", "error", err.Error())
		return
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		log.Fatal("capshot: PNG encode failed", "error", err.Error())
		return
	}
	fmt.Printf("wrote %s (%d image region(s))\n", *outFile, len(out.Images))
}

// compositeFrame lays out images onto a w x h RGBA frame, in the
// order they were produced, for the PNG snapshot. Source pixels are
// already alpha-composited against their own region backgrounds by
// the render package, so this is a plain opaque-or-transparent copy
// rather than a second SRC_OVER pass.
func compositeFrame(w, h int, images []caption.Image) *image.RGBA {
	frame := image.NewRGBA(image.Rect(0, 0, w, h))
	for _, im := range images {
		for y := 0; y < im.Height; y++ {
			dstY := im.DstY + y
			if dstY < 0 || dstY >= h {
				continue
			}
			srcRow := im.Pixels[y*im.Stride : y*im.Stride+im.Width*4]
			for x := 0; x < im.Width; x++ {
				dstX := im.DstX + x
				if dstX < 0 || dstX >= w {
					continue
				}
				a := srcRow[x*4+3]
				if a == 0 {
					continue
				}
				frame.SetRGBA(dstX, dstY, colorFromRGBA8(srcRow[x*4], srcRow[x*4+1], srcRow[x*4+2], a))
			}
		}
	}
	return frame
}

func colorFromRGBA8(r, g, b, a uint8) color.RGBA {
	return color.RGBA{R: r, G: g, B: b, A: a}
}

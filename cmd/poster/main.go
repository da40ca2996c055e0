// Command poster composes a single poster template from a photo.
package main

import (
	"flag"
	"fmt"
	"image"
	"os"

	imagepkg "github.com/youruser/posterapp/internal/image"
	"github.com/youruser/posterapp/internal/util"
	"github.com/youruser/posterapp/internal/util/log"
)

func main() {
	in := flag.String("in", "", "source photo (PNG or JPEG)")
	out := flag.String("out", "poster_template.png", "output PNG path")
	corner := flag.String("corner", imagepkg.CornerImageName, "corner decoration, skipped if missing")
	qr := flag.String("qr", "", "render this text as a QR badge instead of the corner file")
	verbose := flag.Bool("v", false, "verbose logging")
	flag.Parse()

	log.Setup("", *verbose)
	if *in == "" {
		fmt.Fprintln(os.Stderr, "usage: poster -in photo.jpg [-out poster_template.png] [-corner corner_image.png] [-qr text]")
		os.Exit(2)
	}
	if err := run(*in, *out, *corner, *qr); err != nil {
		log.Fatal(err)
	}
}

func run(in, out, cornerPath, qrText string) error {
	src, err := os.ReadFile(in)
	if err != nil {
		return err
	}

	var corner image.Image
	if qrText != "" {
		corner, err = imagepkg.CornerFromQR(qrText, imagepkg.DefaultQRSize)
	} else {
		corner, err = imagepkg.LoadCorner(cornerPath)
	}
	if err != nil {
		return err
	}
	log.Debugf("corner decoration present: %t", corner != nil)

	png, err := imagepkg.Composite(src, corner)
	if err != nil {
		return fmt.Errorf("%s: %w", in, err)
	}
	if err := util.WriteFileAll(out, png); err != nil {
		return err
	}
	log.Printf("wrote %s", out)
	return nil
}

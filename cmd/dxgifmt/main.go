// Command dxgifmt dumps the engine/DXGI format mapping tables.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"text/tabwriter"

	"github.com/gogpu/dxgi"
	"github.com/gogpu/dxgi/gfx"
)

func main() {
	var (
		inverse     = flag.Bool("inverse", false, "dump the DXGI-to-engine table instead")
		colorSpaces = flag.Bool("colorspaces", false, "dump the color-space mapping")
		bind        = flag.String("bind", "", "apply a binding intent: ds, sr, ua, or ds+sr")
	)
	flag.Parse()

	flags, err := parseBindFlags(*bind)
	if err != nil {
		log.Fatal(err)
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	defer w.Flush()

	switch {
	case *colorSpaces:
		dumpColorSpaces(w)
	case *inverse:
		dumpInverse(w)
	default:
		dumpForward(w, flags)
	}
}

func parseBindFlags(s string) (gfx.BindFlags, error) {
	switch s {
	case "":
		return gfx.BindNone, nil
	case "ds":
		return gfx.BindDepthStencil, nil
	case "sr":
		return gfx.BindShaderResource, nil
	case "ua":
		return gfx.BindUnorderedAccess, nil
	case "ds+sr":
		return gfx.BindDepthStencil | gfx.BindShaderResource, nil
	}
	return gfx.BindNone, fmt.Errorf("unknown bind intent %q", s)
}

func dumpForward(w *tabwriter.Writer, flags gfx.BindFlags) {
	fmt.Fprintf(w, "ENGINE\tDXGI (bind: %s)\n", flags)
	for f := gfx.TextureFormatUnknown; f < gfx.TextureFormatCount; f++ {
		fmt.Fprintf(w, "%s\t%s\n", f, dxgi.FromTextureFormat(f, flags))
	}
}

func dumpInverse(w *tabwriter.Writer) {
	fmt.Fprintln(w, "DXGI\tENGINE (canonical)")
	for d := dxgi.FormatUnknown; d <= dxgi.FormatMaxMapped; d++ {
		fmt.Fprintf(w, "%s\t%s\n", d, dxgi.ToTextureFormat(d))
	}
}

func dumpColorSpaces(w *tabwriter.Writer) {
	fmt.Fprintln(w, "ENGINE\tDXGI\tBACK")
	for cs := gfx.ColorSpaceUnknown; cs < gfx.ColorSpaceCount; cs++ {
		d := dxgi.FromColorSpace(cs)
		fmt.Fprintf(w, "%s\t%s\t%s\n", cs, d, dxgi.ToColorSpace(d))
	}
}

package main

import (
	"bytes"
	"context"
	"encoding/base64"
	"flag"
	"fmt"
	"html/template"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"strings"

	"github.com/chromedp/chromedp"
	"github.com/midbel/designer"
)

func main() {
	var (
		output   = flag.String("o", "", "output file (default: stdout)")
		dataFile = flag.String("data", "", "data context file")
		preview  = flag.Bool("preview", false, "bind elements to the data context")
	)
	flag.Parse()

	if flag.NArg() != 2 {
		fmt.Fprintf(os.Stderr, "usage: %s [-o file] [-data data.json] [-preview] <template.json> <svg|html|png|jpg>\n", os.Args[0])
		os.Exit(2)
	}
	var (
		docFile = flag.Arg(0)
		format  = strings.ToLower(flag.Arg(1))
	)

	doc, err := loadDocument(docFile)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	data, err := loadContext(*dataFile)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	w := io.Writer(os.Stdout)
	if *output != "" {
		f, err := os.Create(*output)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		defer f.Close()
		w = f
	}

	switch format {
	case "svg":
		err = designer.RenderPage(w, doc, *preview, data)
	case "html":
		err = exportHTML(w, doc, *preview, data)
	case "png", "jpg", "jpeg":
		err = exportImage(w, doc, *preview, data, format)
	default:
		err = fmt.Errorf("%s: unsupported format", format)
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func loadDocument(file string) (designer.Document, error) {
	r, err := os.Open(file)
	if err != nil {
		return designer.Document{}, err
	}
	defer r.Close()
	return designer.DecodeDocument(r)
}

func loadContext(file string) (map[string]any, error) {
	if file == "" {
		return nil, nil
	}
	r, err := os.Open(file)
	if err != nil {
		return nil, err
	}
	defer r.Close()
	return designer.DecodeContext(r)
}

var page = template.Must(template.New("page").Parse(`<!DOCTYPE html>
<html>
<head><meta charset="utf-8"><title>{{.Title}}</title></head>
<body style="margin:0;display:flex;justify-content:center;background:#e5e7eb">
{{.Body}}
</body>
</html>
`))

func exportHTML(w io.Writer, doc designer.Document, preview bool, data map[string]any) error {
	var buf bytes.Buffer
	if err := designer.RenderPage(&buf, doc, preview, data); err != nil {
		return err
	}
	title := doc.Name
	if title == "" {
		title = "report"
	}
	return page.Execute(w, struct {
		Title string
		Body  template.HTML
	}{
		Title: title,
		Body:  template.HTML(buf.String()),
	})
}

// exportImage loads the rendered SVG as a data URI in headless chrome and
// screenshots the svg element.
func exportImage(w io.Writer, doc designer.Document, preview bool, data map[string]any, format string) error {
	var buf bytes.Buffer
	if err := designer.RenderPage(&buf, doc, preview, data); err != nil {
		return err
	}
	uri := "data:image/svg+xml;base64," + base64.StdEncoding.EncodeToString(buf.Bytes())

	opts := append(chromedp.DefaultExecAllocatorOptions[:], chromedp.Headless)
	allocCtx, cancelAlloc := chromedp.NewExecAllocator(context.Background(), opts...)
	defer cancelAlloc()

	ctx, cancel := chromedp.NewContext(allocCtx)
	defer cancel()

	var shot []byte
	tasks := chromedp.Tasks{
		chromedp.Navigate(uri),
		chromedp.WaitVisible(`svg`, chromedp.ByQuery),
		chromedp.Screenshot(`svg`, &shot, chromedp.ByQuery),
	}
	if err := chromedp.Run(ctx, tasks); err != nil {
		return fmt.Errorf("chromedp: %w", err)
	}
	if len(shot) == 0 {
		return fmt.Errorf("empty screenshot")
	}

	if format == "png" {
		_, err := w.Write(shot)
		return err
	}
	img, err := png.Decode(bytes.NewReader(shot))
	if err != nil {
		return fmt.Errorf("decode screenshot: %w", err)
	}
	return jpeg.Encode(w, img, &jpeg.Options{Quality: 90})
}

package raster

import (
	"bytes"
	"fmt"
	"io"
)

// A4 in PDF points.
const (
	pdfPageWidth  = 595.28
	pdfPageHeight = 841.89
)

type pdfPage struct {
	jpeg []byte
	w, h int
}

// writePDF emits a minimal PDF, one full page DCTDecode image per page.
// Three objects per page follow the catalog and page tree: the page, its
// image XObject and its content stream.
func writePDF(w io.Writer, pages []pdfPage) error {
	var buf bytes.Buffer
	offsets := make([]int, 0, 2+3*len(pages))

	obj := func(body func()) {
		offsets = append(offsets, buf.Len())
		fmt.Fprintf(&buf, "%d 0 obj\n", len(offsets))
		body()
		buf.WriteString("endobj\n")
	}

	buf.WriteString("%PDF-1.4\n")

	obj(func() {
		buf.WriteString("<< /Type /Catalog /Pages 2 0 R >>\n")
	})

	obj(func() {
		buf.WriteString("<< /Type /Pages /Kids [")
		for i := range pages {
			if i > 0 {
				buf.WriteByte(' ')
			}
			fmt.Fprintf(&buf, "%d 0 R", 3+i*3)
		}
		fmt.Fprintf(&buf, "] /Count %d >>\n", len(pages))
	})

	for i, page := range pages {
		imageRef := 4 + i*3
		contentRef := 5 + i*3

		obj(func() {
			fmt.Fprintf(&buf,
				"<< /Type /Page /Parent 2 0 R /MediaBox [0 0 %.2f %.2f] "+
					"/Resources << /XObject << /Im0 %d 0 R >> /ProcSet [/PDF /ImageC] >> "+
					"/Contents %d 0 R >>\n",
				pdfPageWidth, pdfPageHeight, imageRef, contentRef)
		})

		obj(func() {
			fmt.Fprintf(&buf,
				"<< /Type /XObject /Subtype /Image /Width %d /Height %d "+
					"/ColorSpace /DeviceRGB /BitsPerComponent 8 /Filter /DCTDecode /Length %d >>\nstream\n",
				page.w, page.h, len(page.jpeg))
			buf.Write(page.jpeg)
			buf.WriteString("\nendstream\n")
		})

		obj(func() {
			content := fmt.Sprintf("q %.2f 0 0 %.2f 0 0 cm /Im0 Do Q", pdfPageWidth, pdfPageHeight)
			fmt.Fprintf(&buf, "<< /Length %d >>\nstream\n%s\nendstream\n", len(content), content)
		})
	}

	xrefOffset := buf.Len()
	fmt.Fprintf(&buf, "xref\n0 %d\n", len(offsets)+1)
	buf.WriteString("0000000000 65535 f \n")
	for _, off := range offsets {
		fmt.Fprintf(&buf, "%010d 00000 n \n", off)
	}
	fmt.Fprintf(&buf, "trailer\n<< /Size %d /Root 1 0 R >>\nstartxref\n%d\n%%%%EOF\n",
		len(offsets)+1, xrefOffset)

	_, err := w.Write(buf.Bytes())
	return err
}

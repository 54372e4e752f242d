package client

import (
	"context"
	"fmt"

	"taskboard/pkg/auth"
)

// Format selects an export encoding. The bytes are produced by the server.
type Format string

const (
	FormatCSV   Format = "csv"
	FormatExcel Format = "excel"
	FormatPDF   Format = "pdf"
)

// ParseFormat validates an export format name.
func ParseFormat(s string) (Format, error) {
	switch f := Format(s); f {
	case FormatCSV, FormatExcel, FormatPDF:
		return f, nil
	}
	return "", fmt.Errorf("unknown export format %q (want csv, excel or pdf)", s)
}

// Filename is the download name offered for the format.
func (f Format) Filename() string {
	return "tasks." + string(f)
}

// Export fetches the task export in format f. The payload is returned as-is.
func (c *Client) Export(ctx context.Context, tok auth.Token, f Format) ([]byte, error) {
	if _, err := ParseFormat(string(f)); err != nil {
		return nil, err
	}
	return c.t.send(ctx, "GET", "/export/"+string(f), tok, nil)
}

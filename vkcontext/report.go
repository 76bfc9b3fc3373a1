package vkcontext

import (
	"fmt"
	"io"

	"github.com/xlab/tablewriter"
)

// Printer receives diagnostic output as bring-up discovers it.
type Printer interface {
	RequiredExtensions(names []string)
	Layers(available []string)
	Devices(devices []PhysicalDeviceInfo)
	QueueFamilies(families []QueueFamily)
	SurfaceFormats(formats []SurfaceFormat)
	// Flush writes anything buffered and returns the first write error.
	Flush() error
}

// NewPrinter returns the Printer for a Config.Report format.
func NewPrinter(format string, w io.Writer) Printer {
	if format == ReportTable {
		return NewTablePrinter(w)
	}
	return NewTextPrinter(w)
}

// TextPrinter writes plain text as soon as it is handed data.
type TextPrinter struct {
	w   io.Writer
	err error
}

func NewTextPrinter(w io.Writer) *TextPrinter {
	return &TextPrinter{w: w}
}

func (p *TextPrinter) printf(format string, args ...interface{}) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintf(p.w, format, args...)
}

func (p *TextPrinter) RequiredExtensions(names []string) {
	for _, name := range names {
		p.printf("Require extension: %s\n", name)
	}
}

func (p *TextPrinter) Layers(available []string) {
	p.printf("Available layers:\n")
	for _, name := range available {
		p.printf("\t%s\n", name)
	}
	p.printf("\n")
}

func (p *TextPrinter) Devices(devices []PhysicalDeviceInfo) {
	p.printf("Available GPUs:\n")
	for _, d := range devices {
		p.printf("GPU[%d]:\n\tName: %s\n\tType: %s\n", d.Index, d.Name, DeviceTypeString(d.Type))
	}
	p.printf("\n")
}

func (p *TextPrinter) QueueFamilies(families []QueueFamily) {
	for _, q := range families {
		p.printf("Queue[%d]:\n\tQueue Count: %d\n\tQueue Flags: %s\n", q.Index, q.QueueCount, QueueFlagsString(q.Flags))
	}
	p.printf("\n")
}

func (p *TextPrinter) SurfaceFormats(formats []SurfaceFormat) {
	p.printf("Supported SurfaceFormats:\n")
	for i, f := range formats {
		p.printf("\tSurfaceFormat[%d]:\n\t\tFormat: 0x%x\n\t\tColorSpace: 0x%x\n", i, uint32(f.Format), uint32(f.ColorSpace))
	}
	p.printf("\n")
}

func (p *TextPrinter) Flush() error {
	return p.err
}

// TablePrinter collects everything and renders a single box on Flush.
type TablePrinter struct {
	w       io.Writer
	table   *tablewriter.Table
	flushed bool
}

func NewTablePrinter(w io.Writer) *TablePrinter {
	table := tablewriter.CreateTable()
	table.UTF8Box()
	table.AddTitle("VULKAN CONTEXT")
	return &TablePrinter{w: w, table: table}
}

func (p *TablePrinter) RequiredExtensions(names []string) {
	if len(names) == 0 {
		return
	}
	p.table.AddRow("REQUIRED EXTENSIONS", "")
	for i, name := range names {
		p.table.AddRow(i+1, name)
	}
	p.table.AddSeparator()
}

func (p *TablePrinter) Layers(available []string) {
	p.table.AddRow("INSTANCE LAYERS", "")
	for i, name := range available {
		p.table.AddRow(i+1, name)
	}
	p.table.AddSeparator()
}

func (p *TablePrinter) Devices(devices []PhysicalDeviceInfo) {
	p.table.AddRow("Physical GPUs", len(devices))
	for _, d := range devices {
		p.table.AddRow(fmt.Sprintf("GPU[%d] Name", d.Index), d.Name)
		p.table.AddRow(fmt.Sprintf("GPU[%d] Type", d.Index), DeviceTypeString(d.Type))
		p.table.AddRow(fmt.Sprintf("GPU[%d] Vendor", d.Index), fmt.Sprintf("%x", d.VendorID))
		p.table.AddRow(fmt.Sprintf("GPU[%d] API Version", d.Index), d.APIVersion)
		p.table.AddRow(fmt.Sprintf("GPU[%d] Driver Version", d.Index), d.DriverVersion)
	}
	p.table.AddSeparator()
}

func (p *TablePrinter) QueueFamilies(families []QueueFamily) {
	p.table.AddRow("QUEUE FAMILIES", "")
	for _, q := range families {
		p.table.AddRow(fmt.Sprintf("Queue[%d] x%d", q.Index, q.QueueCount), QueueFlagsString(q.Flags))
	}
	p.table.AddSeparator()
}

func (p *TablePrinter) SurfaceFormats(formats []SurfaceFormat) {
	p.table.AddRow("SURFACE FORMATS", "")
	for i, f := range formats {
		p.table.AddRow(i, fmt.Sprintf("format 0x%x, color space 0x%x", uint32(f.Format), uint32(f.ColorSpace)))
	}
}

func (p *TablePrinter) Flush() error {
	if p.flushed {
		return nil
	}
	p.flushed = true
	_, err := fmt.Fprintln(p.w, p.table.Render())
	return err
}

package vkcontext

import "io"

// Run brings a context up, prints diagnostics to out in cfg.Report format and
// tears the context down again. The window system is terminated before Run
// returns, whether or not bring-up succeeded.
func Run(cfg Config, drv Driver, ws WindowSystem, out io.Writer, opts ...Option) error {
	opts = append([]Option{WithPrinter(NewPrinter(cfg.Report, out))}, opts...)
	ctx, err := New(cfg, drv, ws, opts...)
	if err != nil {
		return err
	}
	ctx.Destroy()
	return nil
}

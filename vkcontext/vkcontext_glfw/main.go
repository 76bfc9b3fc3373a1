package main

import (
	"os"
	"runtime"

	"github.com/xlab/catcher"
	"github.com/xlab/closer"

	"github.com/vulkan-go/bringup/vkcontext"
)

func init() {
	runtime.LockOSThread()
}

func main() {
	defer closer.Close()
	defer catcher.Catch(
		catcher.RecvLog(true),
		catcher.RecvDie(-1),
	)

	cfg, err := vkcontext.LoadConfig()
	if err != nil {
		closer.Fatalln(err)
	}
	log := vkcontext.NewLogger(cfg, os.Stderr)
	closer.Bind(func() {
		log.Info("Bye!")
	})

	// GLFW calls, teardown included, stay on the locked main thread.
	if err := vkcontext.Run(cfg, vkcontext.NewVulkanDriver(), windowSystem{}, os.Stdout,
		vkcontext.WithLogger(log),
	); err != nil {
		closer.Fatalln(err)
	}
}

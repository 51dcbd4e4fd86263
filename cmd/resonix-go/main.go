package main

import (
	"errors"
	"fmt"
	"log"

	"github.com/resonix-audio/resonix-go/pkg/resonix"
)

func main() {
	log.Printf("resonix-go version: %s", resonix.WrapperVersion())
	log.Printf("engine header version: 0x%08x", resonix.HeaderVersion())

	sys, err := resonix.NewSystem()
	if err != nil {
		if errors.Is(err, resonix.ErrNotBuilt) {
			fmt.Printf("engine unavailable: %v\n", err)
			fmt.Println("rebuild with CGO_ENABLED=1 and -tags resonix_native to link libresonix")
			return
		}
		log.Fatalf("unexpected failure creating system: %v", err)
	}
	defer func() {
		if rerr := sys.Release(); rerr != nil {
			log.Printf("release error: %v", rerr)
		}
	}()

	if err := sys.Init(64, resonix.InitNormal); err != nil {
		log.Fatalf("engine init: %v", err)
	}
	defer func() {
		if cerr := sys.Close(); cerr != nil {
			log.Printf("close error: %v", cerr)
		}
	}()

	if err := sys.Update(); err != nil {
		log.Fatalf("engine update: %v", err)
	}
	fmt.Println("engine initialized successfully")
}

// Package profiling starts CPU and memory profiles for the -cpuprofile and
// -memprofile command line flags.
package profiling

import (
	"log"
	"os"
	"runtime/pprof"
	"time"
)

var osCreate = os.Create
var pprofStartCPUProfile = pprof.StartCPUProfile
var pprofWriteHeapProfile = pprof.WriteHeapProfile

var memProfilingInterval = 30 * time.Second

// DoCPUProfiling starts CPU profiling into the given file and returns a
// function that stops the profile and closes the file. The returned function
// is never nil so callers can defer it unconditionally.
func DoCPUProfiling(filePath string) func() {
	f, err := osCreate(filePath)
	if err != nil {
		log.Printf("failed to create CPU profile file %s: %v", filePath, err)
		return func() {}
	}
	if err = pprofStartCPUProfile(f); err != nil {
		log.Printf("failed to start CPU profiling: %v", err)
		_ = f.Close()
		return func() {}
	}
	return func() {
		pprof.StopCPUProfile()
		if err := f.Close(); err != nil {
			log.Printf("failed to close CPU profile file %s: %v", filePath, err)
		}
	}
}

// DoMemProfiling writes a heap profile to the given file on an interval and
// returns a function that writes one immediately. Each write replaces the
// previous profile.
func DoMemProfiling(filePath string) func() {
	writeMemProfile := func() {
		writeHeapProfile(filePath)
	}
	go func() {
		for {
			time.Sleep(memProfilingInterval)
			writeMemProfile()
		}
	}()
	return writeMemProfile
}

func writeHeapProfile(filePath string) {
	f, err := osCreate(filePath)
	if err != nil {
		log.Printf("failed to create memory profile file %s: %v", filePath, err)
		return
	}
	if err = pprofWriteHeapProfile(f); err != nil {
		log.Printf("failed to write memory profile: %v", err)
	}
	if err = f.Close(); err != nil {
		log.Printf("failed to close memory profile file %s: %v", filePath, err)
	}
}

// Replay feeds a recorded detection capture (JSON lines, one event per
// line) through the mapping pipeline and prints every observable state
// transition. Useful for checking how a capture from a device renders
// without running the camera.
package main

import (
	"bufio"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"scanoverlay/internal/models"
	"scanoverlay/internal/session"
)

type captureEvent struct {
	DelayMs int                   `json:"delayMs"`
	Frame   models.DetectionFrame `json:"frame"`
}

func main() {
	var (
		file         = flag.String("file", "", "Path to JSONL detection capture")
		screenWidth  = flag.Float64("width", 1080, "Screen width in physical pixels")
		screenHeight = flag.Float64("height", 2400, "Screen height in physical pixels")
		pixelRatio   = flag.Float64("ratio", 3, "Device pixel ratio")
	)
	flag.Parse()

	if *file == "" {
		log.Fatal("Please provide a capture file with -file flag")
	}

	f, err := os.Open(*file)
	if err != nil {
		log.Fatal("Failed to open capture file:", err)
	}
	defer f.Close()

	metrics := models.DisplayMetrics{
		ScreenWidth:  *screenWidth,
		ScreenHeight: *screenHeight,
		PixelRatio:   *pixelRatio,
	}

	sess := session.New(metrics, 0, nil)
	sess.Start()

	updates := sess.Updates().Subscribe()

	printed := make(chan struct{})
	go func() {
		defer close(printed)
		n := 0
		for snap := range updates {
			n++
			fmt.Printf("--- transition %d: scanning=%v boxes=%d codes=%d\n",
				n, snap.Scanning, len(snap.Boxes), len(snap.Codes))
			for _, box := range snap.Boxes {
				fmt.Printf("    box x=%.2f y=%.2f w=%.2f h=%.2f (%d corners)\n",
					box.X, box.Y, box.Width, box.Height, len(box.Corners))
			}
			for _, code := range snap.Codes {
				fmt.Printf("    code %q (%dms)\n", code.Value, code.ScanTime)
			}
		}
	}()

	frames := 0
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}

		var event captureEvent
		if err := json.Unmarshal(line, &event); err != nil {
			log.Printf("Skipping bad capture line: %v", err)
			continue
		}

		if event.DelayMs > 0 {
			time.Sleep(time.Duration(event.DelayMs) * time.Millisecond)
		}
		sess.OnDetectionFrame(event.Frame)
		frames++
	}
	if err := scanner.Err(); err != nil {
		log.Fatal("Failed to read capture file:", err)
	}

	// Let the trailing debounce clear fire before shutting down.
	time.Sleep(session.DefaultClearDelay + 50*time.Millisecond)

	sess.Updates().Unsubscribe(updates)
	<-printed
	sess.Dispose()

	fmt.Printf("Replayed %d frames\n", frames)
}

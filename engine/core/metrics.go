package core

const frameSampleCount = 30

// FrameStats keeps a rolling average of frame times and a frames-per-second
// counter. It is owned by the application loop and fed once per frame.
type FrameStats struct {
	sampleCursor  int
	frameTimesMS  [frameSampleCount]float64
	avgFrameMS    float64
	frames        int32
	accumulatedMS float64
	fps           float64
}

func NewFrameStats() *FrameStats {
	return &FrameStats{}
}

// Record folds one frame's elapsed time, in seconds, into the statistics.
func (fs *FrameStats) Record(frameElapsed float64) {
	frameMS := frameElapsed * 1000.0

	fs.frameTimesMS[fs.sampleCursor] = frameMS
	if fs.sampleCursor == frameSampleCount-1 {
		sum := 0.0
		for _, t := range fs.frameTimesMS {
			sum += t
		}
		fs.avgFrameMS = sum / frameSampleCount
	}
	fs.sampleCursor = (fs.sampleCursor + 1) % frameSampleCount

	fs.accumulatedMS += frameMS
	if fs.accumulatedMS > 1000 {
		fs.fps = float64(fs.frames)
		fs.accumulatedMS -= 1000
		fs.frames = 0
	}
	fs.frames++
}

// FPS returns the most recently completed frames-per-second count.
func (fs *FrameStats) FPS() float64 {
	return fs.fps
}

// AvgFrameTime returns the rolling average frame time in milliseconds.
func (fs *FrameStats) AvgFrameTime() float64 {
	return fs.avgFrameMS
}

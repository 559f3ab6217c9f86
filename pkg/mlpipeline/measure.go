package mlpipeline

import (
	"sync"
	"time"
)

type stepTiming struct {
	mu sync.Mutex

	fitElapsed time.Duration
	fitTotal   int64

	produceElapsed time.Duration
	produceTotal   int64
}

func (st *stepTiming) addFit(elapsed time.Duration) {
	st.mu.Lock()
	defer st.mu.Unlock()
	st.fitTotal++
	st.fitElapsed += elapsed
}

func (st *stepTiming) addProduce(elapsed time.Duration) {
	st.mu.Lock()
	defer st.mu.Unlock()
	st.produceTotal++
	st.produceElapsed += elapsed
}

func (st *stepTiming) avgFit() time.Duration {
	st.mu.Lock()
	defer st.mu.Unlock()
	if st.fitTotal == 0 {
		return 0
	}

	return round(time.Duration(float64(st.fitElapsed) / float64(st.fitTotal)))
}

func (st *stepTiming) avgProduce() time.Duration {
	st.mu.Lock()
	defer st.mu.Unlock()
	if st.produceTotal == 0 {
		return 0
	}

	return round(time.Duration(float64(st.produceElapsed) / float64(st.produceTotal)))
}

type measure struct {
	mu    sync.Mutex
	steps map[string]*stepTiming
}

func newMeasure() *measure {
	return &measure{
		steps: make(map[string]*stepTiming),
	}
}

func (m *measure) step(name string) *stepTiming {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.steps[name] == nil {
		m.steps[name] = &stepTiming{}
	}

	return m.steps[name]
}

// StepTiming reports the average fit and produce durations observed for one
// step.
type StepTiming struct {
	Step       string
	AvgFit     time.Duration
	AvgProduce time.Duration
}

// Timings returns the measured per-step averages in dataflow order. It
// returns nil unless the pipeline was built with WithMeasure.
func (p *Pipeline) Timings() []StepTiming {
	if p.measure == nil {
		return nil
	}

	out := make([]StepTiming, 0, len(p.dataflow))
	seen := make(map[string]struct{}, len(p.dataflow))
	for _, name := range p.dataflow {
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}

		st := p.measure.step(name)
		out = append(out, StepTiming{
			Step:       name,
			AvgFit:     st.avgFit(),
			AvgProduce: st.avgProduce(),
		})
	}

	return out
}

func round(d time.Duration) time.Duration {
	switch {
	case d > time.Second:
		d = d.Round(time.Second)
	case d > time.Millisecond:
		d = d.Round(time.Millisecond)
	case d > time.Microsecond:
		d = d.Round(time.Microsecond)
	}

	return d
}

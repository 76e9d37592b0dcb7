package runner

import (
	"context"
	"sync"

	"github.com/zoro11031/xn/internal/system"
)

// fakeCommands replays queued results and records every command it was given.
type fakeCommands struct {
	mu       sync.Mutex
	results  []system.Result
	Commands []string
	onRun    func(call int)
}

func (f *fakeCommands) Run(ctx context.Context, command string) system.Result {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.Commands = append(f.Commands, command)
	if f.onRun != nil {
		f.onRun(len(f.Commands))
	}
	if len(f.results) == 0 {
		return system.Result{}
	}
	res := f.results[0]
	f.results = f.results[1:]
	return res
}

// recordingPrinter keeps the sequence of presentation events.
type recordingPrinter struct {
	Events   []string
	Finished []Outcome
	Printed  []Outcome
	Intro    int
}

func (p *recordingPrinter) ShowIntro(count int) {
	p.Intro = count
	p.Events = append(p.Events, "intro")
}

func (p *recordingPrinter) StartRun(index int) {
	p.Events = append(p.Events, "start")
}

func (p *recordingPrinter) FinishRun(outcome Outcome) {
	p.Finished = append(p.Finished, outcome)
	p.Events = append(p.Events, "finish")
}

func (p *recordingPrinter) CancelRun() {
	p.Events = append(p.Events, "cancel")
}

func (p *recordingPrinter) PrintResult(outcome Outcome) {
	p.Printed = append(p.Printed, outcome)
	p.Events = append(p.Events, "result")
}

func (p *recordingPrinter) ShowOutro() {
	p.Events = append(p.Events, "outro")
}

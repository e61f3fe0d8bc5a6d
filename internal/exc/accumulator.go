// © 2023 Microglot LLC
//
// SPDX-License-Identifier: Apache-2.0

package exc

import "sync"

// Reporter is used to accumulate and report errors while compiling enum
// definitions. Checks can decide to report an error but continue processing
// rather than fail outright so that a single run surfaces every problem in a
// definition table.
type Reporter interface {
	// Report adds the given record to the set. If this method returns an error
	// then the given error is considered fatal.
	Report(Exception) Exception
	// Reported returns the set of accumulated exceptions.
	Reported() []Exception
	// Split partitions the accumulated exceptions into those that fail the
	// run and warnings.
	Split() (fatal []Exception, warnings []Exception)
}

// NewReporter returns a concurrent-safe implementation of Reporter. Codes in
// nonFatal are recorded but never returned from Report.
func NewReporter(nonFatal []string) Reporter {
	nf := make(map[string]bool, len(defaultNonFatal)+len(nonFatal))
	for k := range defaultNonFatal {
		nf[k] = true
	}
	for _, k := range nonFatal {
		nf[k] = true
	}
	return &reporterLock{
		Reporter: &reporter{
			nonFatal: nf,
		},
		lock: &sync.Mutex{},
	}
}

type reporter struct {
	reported []Exception
	nonFatal map[string]bool
}

func (r *reporter) Report(e Exception) Exception {
	r.reported = append(r.reported, e)
	if r.nonFatal[e.Code()] {
		return nil
	}
	return e
}

func (r *reporter) Reported() []Exception {
	out := make([]Exception, len(r.reported))
	copy(out, r.reported)
	return out
}

func (r *reporter) Split() ([]Exception, []Exception) {
	var fatal, warnings []Exception
	for _, e := range r.reported {
		if r.nonFatal[e.Code()] {
			warnings = append(warnings, e)
			continue
		}
		fatal = append(fatal, e)
	}
	return fatal, warnings
}

type reporterLock struct {
	Reporter
	lock sync.Locker
}

func (r *reporterLock) Report(e Exception) Exception {
	r.lock.Lock()
	defer r.lock.Unlock()
	return r.Reporter.Report(e)
}

func (r *reporterLock) Reported() []Exception {
	r.lock.Lock()
	defer r.lock.Unlock()
	return r.Reporter.Reported()
}

func (r *reporterLock) Split() ([]Exception, []Exception) {
	r.lock.Lock()
	defer r.lock.Unlock()
	return r.Reporter.Split()
}

// Package parser reads the line-oriented process file format:
//
//	processcount 2
//	runfor 10
//	use rr
//	quantum 2
//	process name A arrival 0 burst 5
//	process name B arrival 1 burst 3
//	end
//
// Text after '#' is a comment. Lines after "end" are ignored.
package parser

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"os"
	"os-scheduler-sim/internal/requests"
	"strconv"
	"strings"
)

type SyntaxError struct {
	Line int
	Msg  string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("line %d: %s", e.Line, e.Msg)
}

func ParseFile(path string) (*requests.ScheduleRequest, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	request, err := Parse(file)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return request, nil
}

func Parse(r io.Reader) (*requests.ScheduleRequest, error) {
	request := &requests.ScheduleRequest{}
	processCount := -1

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		if i := strings.IndexByte(line, '#'); i >= 0 {
			line = line[:i]
		}
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}

		switch fields[0] {
		case "end":
			return finish(request, processCount)
		case "processcount":
			n, err := intArg(lineNo, fields)
			if err != nil {
				return nil, err
			}
			processCount = n
		case "runfor":
			n, err := intArg(lineNo, fields)
			if err != nil {
				return nil, err
			}
			request.RunFor = n
		case "quantum":
			n, err := intArg(lineNo, fields)
			if err != nil {
				return nil, err
			}
			request.Quantum = n
		case "use":
			if len(fields) != 2 {
				return nil, &SyntaxError{Line: lineNo, Msg: "use expects one algorithm name"}
			}
			request.Algorithm = fields[1]
		case "process":
			job, err := parseProcess(lineNo, fields[1:])
			if err != nil {
				return nil, err
			}
			request.Jobs = append(request.Jobs, job)
		default:
			return nil, &SyntaxError{Line: lineNo, Msg: fmt.Sprintf("unknown directive %q", fields[0])}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return finish(request, processCount)
}

func finish(request *requests.ScheduleRequest, processCount int) (*requests.ScheduleRequest, error) {
	if processCount >= 0 && processCount != len(request.Jobs) {
		log.Printf("processcount %d does not match %d process lines", processCount, len(request.Jobs))
	}
	return request, nil
}

func intArg(lineNo int, fields []string) (int, error) {
	if len(fields) != 2 {
		return 0, &SyntaxError{Line: lineNo, Msg: fmt.Sprintf("%s expects one integer", fields[0])}
	}
	n, err := strconv.Atoi(fields[1])
	if err != nil {
		return 0, &SyntaxError{Line: lineNo, Msg: fmt.Sprintf("%s: invalid integer %q", fields[0], fields[1])}
	}
	return n, nil
}

// parseProcess reads "name X arrival N burst N" key/value pairs in any order.
func parseProcess(lineNo int, fields []string) (requests.Job, error) {
	var job requests.Job
	if len(fields)%2 != 0 {
		return job, &SyntaxError{Line: lineNo, Msg: "process expects key/value pairs"}
	}
	seen := map[string]bool{}
	for i := 0; i < len(fields); i += 2 {
		key, value := fields[i], fields[i+1]
		if seen[key] {
			return job, &SyntaxError{Line: lineNo, Msg: fmt.Sprintf("process: repeated %q", key)}
		}
		seen[key] = true

		switch key {
		case "name":
			job.Name = value
		case "arrival", "burst":
			n, err := strconv.Atoi(value)
			if err != nil {
				return job, &SyntaxError{Line: lineNo, Msg: fmt.Sprintf("process %s: invalid integer %q", key, value)}
			}
			if key == "arrival" {
				job.Arrival = n
			} else {
				job.Burst = n
			}
		default:
			return job, &SyntaxError{Line: lineNo, Msg: fmt.Sprintf("process: unknown key %q", key)}
		}
	}
	for _, key := range []string{"name", "arrival", "burst"} {
		if !seen[key] {
			return job, &SyntaxError{Line: lineNo, Msg: fmt.Sprintf("process: missing %q", key)}
		}
	}
	return job, nil
}

package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os-scheduler-sim/api"
	"os-scheduler-sim/config"
	"os-scheduler-sim/internal/parser"
	"os-scheduler-sim/internal/report"
	"os-scheduler-sim/internal/responses"
	"os-scheduler-sim/internal/schedulers"
	"os-scheduler-sim/internal/store"
	"path/filepath"
	"strings"
)

func main() {
	configDir := flag.String("config", "./", "directory holding config.yaml")
	input := flag.String("in", "", "process file to simulate; the HTTP API is served when empty")
	table := flag.Bool("table", false, "print a summary table after simulating a process file")
	flag.Parse()

	if *input != "" {
		if err := simulateFile(*input, *table); err != nil {
			log.Fatalln(err)
		}
		return
	}

	cfg, err := config.Load(*configDir)
	if err != nil {
		log.Fatalln(err)
	}
	app := api.NewApp(cfg, store.New(cfg))

	log.Printf("listening on port %d", cfg.Port)
	log.Fatalln(app.Listen(fmt.Sprintf(":%d", cfg.Port)))
}

// simulateFile runs the process file at path and writes <base>.out and
// <base>.html beside it.
func simulateFile(path string, table bool) error {
	request, err := parser.ParseFile(path)
	if err != nil {
		return err
	}
	response, err := schedulers.Simulate(*request)
	if err != nil {
		return err
	}

	base := strings.TrimSuffix(path, filepath.Ext(path))
	if err := writeFile(base+".out", response, report.WriteText); err != nil {
		return err
	}
	if err := writeFile(base+".html", response, report.WriteHTML); err != nil {
		return err
	}
	log.Printf("wrote %s.out and %s.html", base, base)

	if table {
		report.WriteSummary(os.Stdout, response)
	}
	return nil
}

func writeFile(name string, response responses.ScheduleResponse, write func(io.Writer, responses.ScheduleResponse) error) error {
	f, err := os.Create(name)
	if err != nil {
		return err
	}
	if err := write(f, response); err != nil {
		f.Close()
		return fmt.Errorf("write %s: %w", name, err)
	}
	return f.Close()
}

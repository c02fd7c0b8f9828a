package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"

	"github.com/meigma/vfs"
)

type config struct {
	verbose bool
	quiet   bool
	export  string
}

// step is one scripted operation of the demo.
type step struct {
	title string
	run   func(fsys *vfs.FileSystem) error
}

func main() {
	cfg := parseFlags()

	var opts []vfs.Option
	if cfg.verbose {
		logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
		opts = append(opts, vfs.WithLogger(logger))
	}
	fsys := vfs.New(opts...)

	out := io.Writer(os.Stdout)
	if cfg.quiet {
		out = io.Discard
	}
	if err := runDemo(out, fsys, demoSteps()); err != nil {
		log.Fatal(err)
	}
	if cfg.quiet {
		fmt.Print(fsys.Render())
	}

	if cfg.export != "" {
		if err := exportTree(cfg.export, fsys); err != nil {
			log.Fatal(err)
		}
		log.Printf("exported tree to %s", cfg.export)
	}
}

func parseFlags() config {
	var cfg config
	flag.BoolVar(&cfg.verbose, "v", false, "log every tree mutation to stderr")
	flag.BoolVar(&cfg.quiet, "q", false, "print only the final tree")
	flag.StringVar(&cfg.export, "export", "", "write a zstd-compressed tar of the final tree to file")
	flag.Parse()
	return cfg
}

// demoSteps builds drives, folders, a zip and two text files, then moves a
// folder into the zip so its size is halved.
func demoSteps() []step {
	return []step{
		{"Adding Drive A", create("drive", "DriveA", "")},
		{"Adding Drive B", create("drive", "DriveB", "")},
		{"Adding Folder A", create("folder", "FolderA", "DriveA")},
		{"Adding Folder B", create("folder", "FolderB", "DriveB")},
		{"Adding Folder C", create("folder", "FolderC", `DriveB\FolderB`)},
		{"Adding Zip D", create("zip", "ZipD", "DriveA")},
		{"Adding Text A", create("text", "TextA", `DriveB\FolderB\FolderC`)},
		{"Updating Text A Content", write(`DriveB\FolderB\FolderC\TextA`, "testabcd")},
		{"Adding Text B", create("text", "TextB", `DriveA\ZipD`)},
		{"Updating Text B Content", write(`DriveA\ZipD\TextB`, "testabcdtestabcd")},
		{"Move Folder B into Zip D", move(`DriveB\FolderB`, `DriveA\ZipD`)},
	}
}

func create(kind, name, parent string) func(*vfs.FileSystem) error {
	return func(fsys *vfs.FileSystem) error {
		_, err := fsys.Create(kind, name, parent)
		return err
	}
}

func write(path, content string) func(*vfs.FileSystem) error {
	return func(fsys *vfs.FileSystem) error {
		return fsys.WriteToFile(path, content)
	}
}

func move(src, dst string) func(*vfs.FileSystem) error {
	return func(fsys *vfs.FileSystem) error {
		return fsys.Move(src, dst)
	}
}

// runDemo applies steps in order, printing the tree after each one.
func runDemo(w io.Writer, fsys *vfs.FileSystem, steps []step) error {
	fmt.Fprintln(w, "1. Creating File System")
	for i, s := range steps {
		fmt.Fprintf(w, "%d. %s\n", i+2, s.title)
		if err := s.run(fsys); err != nil {
			return fmt.Errorf("%s: %w", s.title, err)
		}
		fmt.Fprintf(w, "Current File System Structure: \n%s\n", fsys.Render())
	}
	return nil
}

func exportTree(path string, fsys *vfs.FileSystem) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	return vfs.Export(context.Background(), f, fsys)
}

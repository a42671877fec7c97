// easm CLI - assembles EVM-flavored mnemonic assembly into bytecode hex
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/nyzd/easm/compiler"
	"github.com/nyzd/easm/dist"
	"github.com/nyzd/easm/manifest"
	"github.com/nyzd/easm/pkg/bytecode"
	"github.com/nyzd/easm/server"
)

func main() {
	verbose := flag.Bool("v", false, "Verbose output")
	output := flag.String("o", "", "Write the hex line to a file instead of stdout")
	artifact := flag.String("artifact", "", "Also write a CBOR artifact to the given path")
	disasm := flag.Bool("d", false, "Disassemble: treat the argument as a bytecode hex file")
	project := flag.String("p", "", "Project mode: build the easm.toml project in the given directory")
	serveMode := flag.Bool("serve", false, "Start the assembler service (Connect HTTP/JSON)")
	servePort := flag.Int("port", 4567, "Assembler service port (used with --serve)")
	lspMode := flag.Bool("lsp", false, "Start the language server on stdio")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: easm [options] <file.easm>\n\n")
		fmt.Fprintf(os.Stderr, "Assembles mnemonic assembly into a single bytecode hex line.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  easm prog.easm                    # Assemble, print hex to stdout\n")
		fmt.Fprintf(os.Stderr, "  easm -o prog.hex prog.easm        # Assemble to a file\n")
		fmt.Fprintf(os.Stderr, "  easm -artifact prog.easmc prog.easm\n")
		fmt.Fprintf(os.Stderr, "  easm -d prog.hex                  # Print a disassembly listing\n")
		fmt.Fprintf(os.Stderr, "  easm -p .                         # Build the easm.toml project here\n")
		fmt.Fprintf(os.Stderr, "  easm --serve --port 8080          # Start the assembler service\n")
		fmt.Fprintf(os.Stderr, "  easm --lsp                        # Start the language server\n")
	}
	flag.Parse()

	switch {
	case *lspMode:
		if err := server.NewLSP().Run(); err != nil {
			fatal(err)
		}

	case *serveMode:
		if err := server.New().ListenAndServe(fmt.Sprintf(":%d", *servePort)); err != nil {
			fatal(err)
		}

	case *project != "":
		if err := buildProject(*project, *verbose); err != nil {
			fatal(err)
		}

	case *disasm:
		if err := disasmFile(argFile()); err != nil {
			fatal(err)
		}

	default:
		if err := assembleFile(argFile(), *output, *artifact, *verbose); err != nil {
			fatal(err)
		}
	}
}

// argFile returns the single positional file argument, or exits with usage.
func argFile() string {
	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(1)
	}
	return flag.Arg(0)
}

func fatal(err error) {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	os.Exit(1)
}

// assembleFile assembles one source file and writes its outputs.
func assembleFile(path, output, artifactPath string, verbose bool) error {
	source, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	seq, err := compiler.Assemble(string(source))
	if err != nil {
		return err
	}
	hex := seq.Join()

	if verbose {
		fmt.Fprintf(os.Stderr, "%s: %d tokens, %d bytes of hex\n",
			path, len(compiler.Tokenize(string(source))), len(hex))
	}

	if artifactPath != "" {
		if err := writeArtifact(artifactPath, path, string(source)); err != nil {
			return err
		}
	}

	if output == "" {
		fmt.Println(hex)
		return nil
	}
	return os.WriteFile(output, []byte(hex+"\n"), 0o644)
}

// buildProject assembles the entry point of an easm.toml project and writes
// its configured outputs.
func buildProject(dir string, verbose bool) error {
	m, err := manifest.Load(dir)
	if err != nil {
		return err
	}

	source, err := os.ReadFile(m.EntryPath())
	if err != nil {
		return err
	}

	seq, err := compiler.Assemble(string(source))
	if err != nil {
		return err
	}
	hex := seq.Join()

	if err := os.WriteFile(m.HexPath(), []byte(hex+"\n"), 0o644); err != nil {
		return err
	}
	if verbose {
		fmt.Printf("%s: wrote %s\n", m.Project.Name, m.HexPath())
	}

	if path := m.ArtifactPath(); path != "" {
		if err := writeArtifact(path, m.Source.Entry, string(source)); err != nil {
			return err
		}
		if verbose {
			fmt.Printf("%s: wrote %s\n", m.Project.Name, path)
		}
	}
	return nil
}

// disasmFile prints a disassembly listing for a bytecode hex file.
func disasmFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	listing, err := bytecode.Disassemble(string(data))
	if err != nil {
		return err
	}
	fmt.Print(listing)
	return nil
}

// writeArtifact builds and serializes the CBOR artifact for a source file.
func writeArtifact(path, name, source string) error {
	a, err := dist.Build(name, source)
	if err != nil {
		return err
	}
	data, err := dist.MarshalArtifact(a)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

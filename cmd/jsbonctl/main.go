// Command jsbonctl encodes and decodes JSBON streams from the command line,
// using JSON as the human-editable source/sink format.
package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/jsbon/jsbon"
	"github.com/jsbon/jsbon/format"
)

var (
	inputFile   string
	outputFile  string
	wantCRC     bool
	compression string
	showStats   bool
)

func readInput() ([]byte, error) {
	if inputFile == "" || inputFile == "-" {
		return io.ReadAll(os.Stdin)
	}

	return os.ReadFile(inputFile)
}

func writeOutput(data []byte) error {
	if outputFile == "" || outputFile == "-" {
		_, err := os.Stdout.Write(data)
		return err
	}

	return os.WriteFile(outputFile, data, 0o644)
}

func compressionFromFlag(name string) (format.CompressionType, error) {
	switch name {
	case "none":
		return format.CompressionNone, nil
	case "zstd":
		return format.CompressionZstd, nil
	case "s2":
		return format.CompressionS2, nil
	case "lz4":
		return format.CompressionLZ4, nil
	default:
		return 0, fmt.Errorf("unknown compression %q, want none|zstd|s2|lz4", name)
	}
}

func runEncode(cmd *cobra.Command, args []string) error {
	raw, err := readInput()
	if err != nil {
		return fmt.Errorf("read input: %w", err)
	}

	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return fmt.Errorf("parse JSON input: %w", err)
	}

	var opts []jsbon.EncodeOption
	if wantCRC {
		opts = append(opts, jsbon.WithCRC32())
	}

	data, err := jsbon.Encode(fromJSON(parsed), opts...)
	if err != nil {
		return fmt.Errorf("encode: %w", err)
	}

	return writeOutput(data)
}

func runDecode(cmd *cobra.Command, args []string) error {
	data, err := readInput()
	if err != nil {
		return fmt.Errorf("read input: %w", err)
	}

	v, err := jsbon.Decode(data)
	if err != nil {
		return fmt.Errorf("decode: %w", err)
	}

	out, err := json.MarshalIndent(toJSON(v, nil), "", "  ")
	if err != nil {
		return fmt.Errorf("marshal JSON output: %w", err)
	}
	out = append(out, '\n')

	return writeOutput(out)
}

func runArchive(cmd *cobra.Command, args []string) error {
	data, err := readInput()
	if err != nil {
		return fmt.Errorf("read input: %w", err)
	}

	kind, err := compressionFromFlag(compression)
	if err != nil {
		return err
	}

	if !showStats {
		archived, err := jsbon.Archive(data, kind)
		if err != nil {
			return fmt.Errorf("archive: %w", err)
		}

		return writeOutput(archived)
	}

	archived, stats, err := jsbon.ArchiveWithStats(data, kind)
	if err != nil {
		return fmt.Errorf("archive: %w", err)
	}

	fmt.Fprintf(os.Stderr, "%s: %d -> %d bytes (%.1f%% smaller)\n",
		stats.Algorithm, stats.OriginalSize, stats.CompressedSize, stats.SpaceSavings())

	return writeOutput(archived)
}

func runUnarchive(cmd *cobra.Command, args []string) error {
	archived, err := readInput()
	if err != nil {
		return fmt.Errorf("read input: %w", err)
	}

	data, err := jsbon.Unarchive(archived)
	if err != nil {
		return fmt.Errorf("unarchive: %w", err)
	}

	return writeOutput(data)
}

func addIOFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&inputFile, "in", "i", "-", "input file, or - for stdin")
	cmd.Flags().StringVarP(&outputFile, "out", "o", "-", "output file, or - for stdout")
}

func main() {
	rootCmd := &cobra.Command{
		Use:   "jsbonctl",
		Short: "Encode and decode JSBON binary streams",
		Long:  "jsbonctl converts between JSON and the JSBON binary wire format, and wraps/unwraps archive envelopes.",
	}

	encodeCmd := &cobra.Command{
		Use:   "encode",
		Short: "Encode JSON input into a JSBON stream",
		RunE:  runEncode,
	}
	encodeCmd.Flags().BoolVar(&wantCRC, "crc32", false, "include a CRC32 checksum over the payload")
	addIOFlags(encodeCmd)

	decodeCmd := &cobra.Command{
		Use:   "decode",
		Short: "Decode a JSBON stream into JSON",
		RunE:  runDecode,
	}
	addIOFlags(decodeCmd)

	archiveCmd := &cobra.Command{
		Use:   "archive",
		Short: "Wrap a JSBON stream in a compressed archive envelope",
		RunE:  runArchive,
	}
	archiveCmd.Flags().StringVar(&compression, "compression", "zstd", "none|zstd|s2|lz4")
	archiveCmd.Flags().BoolVar(&showStats, "stats", false, "print compression stats to stderr")
	addIOFlags(archiveCmd)

	unarchiveCmd := &cobra.Command{
		Use:   "unarchive",
		Short: "Unwrap an archive envelope back into a JSBON stream",
		RunE:  runUnarchive,
	}
	addIOFlags(unarchiveCmd)

	rootCmd.AddCommand(encodeCmd, decodeCmd, archiveCmd, unarchiveCmd)

	if err := rootCmd.Execute(); err != nil {
		log.Fatal(err)
	}
}

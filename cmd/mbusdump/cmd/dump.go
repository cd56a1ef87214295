package cmd

import (
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/mbus-go/mbus"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	inputPath  string
	format     string
	metricsAddr string
)

func init() {
	dumpCmd := &cobra.Command{
		Use:   "dump",
		Short: "Decode one telegram and print its frame and record structure",
		Example: `  # Decode a hex-encoded telegram from a file
  mbusdump dump -i telegram.hex

  # Decode raw bytes piped on stdin
  cat telegram.bin | mbusdump dump --format raw`,
		RunE: runDump,
	}

	dumpCmd.Flags().StringVarP(&inputPath, "input", "i", "", "input file (default: stdin)")
	dumpCmd.Flags().StringVar(&format, "format", "hex", "input encoding: hex or raw")
	dumpCmd.Flags().StringVar(&metricsAddr, "metrics-addr", "", "expose Prometheus metrics on this address (e.g. :9090); empty disables")

	rootCmd.AddCommand(dumpCmd)
}

func runDump(cmd *cobra.Command, args []string) error {
	var logger *logrus.Logger = configureLogger()
	mbus.SetLogger(logger)

	var stopMetrics func()
	if metricsAddr != "" {
		stopMetrics = serveMetrics(metricsAddr, logger)
		defer stopMetrics()
	}

	data, err := readInput()
	if err != nil {
		return fmt.Errorf("reading input: %w", err)
	}

	start := time.Now()
	frame, err := mbus.DecodeFrame(data)
	if metricsEnabled {
		decodeLatency.Observe(time.Since(start).Seconds())
	}
	if err != nil {
		if metricsEnabled {
			decodeErrors.Inc()
		}
		return fmt.Errorf("decoding frame: %w", err)
	}

	fmt.Printf("frame: kind=%s bytes=%d\n", frame.Kind(), len(frame.Raw()))

	lf, ok := frame.(mbus.LongFrame)
	if !ok {
		return nil
	}
	fmt.Printf("  control=%#02x address=%#02x ci=%#02x payload_len=%d\n",
		byte(lf.C), byte(lf.A), lf.CI, len(lf.Payload))

	c := mbus.NewCursor(lf.Payload)
	for c.Remaining() > 0 {
		rec, err := mbus.DecodeRecord(c)
		if err != nil {
			if metricsEnabled {
				decodeErrors.Inc()
			}
			return fmt.Errorf("decoding record at offset %d: %w", c.Offset(), err)
		}
		if metricsEnabled {
			recordsDecoded.Inc()
		}
		printRecord(rec)
	}
	return nil
}

func printRecord(rec mbus.Record) {
	vi := mbus.DecodeVIFPrimary(rec.VIB.VIF)
	fmt.Printf("  record: dif_code=%s storage=%d quantity=%s unit=%s value=%s\n",
		rec.DIB.DIF.DataFieldCode(), rec.DIB.StorageNumber(), vi.Quantity, vi.Unit, formatValue(rec.Value))
}

func formatValue(v mbus.DecodedValue) string {
	switch v.Kind {
	case mbus.ValueInt:
		return fmt.Sprintf("%d", v.Int)
	case mbus.ValueReal32:
		return fmt.Sprintf("%g", v.Real32)
	case mbus.ValueBCD:
		return fmt.Sprintf("%d", v.BCD)
	case mbus.ValueBoolean:
		return fmt.Sprintf("%t", v.Bool)
	case mbus.ValueDate:
		return fmt.Sprintf("%04d-%02d-%02d", v.Date.Year, v.Date.Month, v.Date.Day)
	case mbus.ValueTime:
		return fmt.Sprintf("%02d:%02d:%02d", v.Time.Hour, v.Time.Minute, v.Time.Second)
	case mbus.ValueDateTime:
		return fmt.Sprintf("%04d-%02d-%02d %02d:%02d:%02d",
			v.DateTime.Year, v.DateTime.Month, v.DateTime.Day,
			v.DateTime.Hour, v.DateTime.Minute, v.DateTime.Second)
	case mbus.ValueVarLenBytes, mbus.ValueReadoutSelector, mbus.ValueSpecialFunction:
		return hex.EncodeToString(v.Bytes)
	default:
		return "-"
	}
}

func readInput() ([]byte, error) {
	var r io.Reader = os.Stdin
	if inputPath != "" {
		f, err := os.Open(inputPath)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	}

	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	switch strings.ToLower(format) {
	case "raw":
		return raw, nil
	case "hex":
		text := strings.TrimSpace(string(raw))
		text = strings.Join(strings.Fields(text), "")
		return hex.DecodeString(text)
	default:
		return nil, fmt.Errorf("unknown --format %q, want hex or raw", format)
	}
}


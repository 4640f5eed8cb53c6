package cmd

import (
	"bytes"
	"fmt"
	"os"

	"github.com/theirongolddev/wordpace/internal/store"

	"github.com/spf13/cobra"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export all goals and entries as JSON",
	Long:  "Write every goal and snapshot to a JSON document, the same format older wordpace builds kept in their browser storage.",
	RunE:  runExport,
}

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Import goals and entries from a JSON export",
	Args:  cobra.ExactArgs(1),
	RunE:  runImport,
}

var flagExportOut string

func init() {
	exportCmd.Flags().StringVarP(&flagExportOut, "output", "o", "", "Write to a file instead of stdout")
	rootCmd.AddCommand(exportCmd, importCmd)
}

func runExport(_ *cobra.Command, _ []string) error {
	st, _, err := openStore()
	if err != nil {
		return err
	}
	defer func() { _ = st.Close() }()

	snap, err := st.ExportSnapshot()
	if err != nil {
		return fmt.Errorf("exporting: %w", err)
	}
	var buf bytes.Buffer
	if err := store.EncodeSnapshot(&buf, snap); err != nil {
		return fmt.Errorf("encoding: %w", err)
	}

	if flagExportOut == "" {
		fmt.Println(buf.String())
		return nil
	}
	if err := os.WriteFile(flagExportOut, buf.Bytes(), 0o600); err != nil {
		return fmt.Errorf("writing %s: %w", flagExportOut, err)
	}
	if !flagQuiet {
		fmt.Printf("  Exported %d goals and %d entries to %s\n",
			len(snap.Goals), len(snap.Entries), flagExportOut)
	}
	return nil
}

func runImport(_ *cobra.Command, args []string) error {
	f, err := os.Open(args[0])
	if err != nil {
		return fmt.Errorf("reading %s: %w", args[0], err)
	}
	defer func() { _ = f.Close() }()

	snap, err := store.DecodeSnapshot(f)
	if err != nil {
		return fmt.Errorf("parsing %s: %w", args[0], err)
	}

	st, _, err := openStore()
	if err != nil {
		return err
	}
	defer func() { _ = st.Close() }()

	if err := st.ImportSnapshot(snap); err != nil {
		return fmt.Errorf("importing: %w", err)
	}
	if !flagQuiet {
		fmt.Printf("  Imported %d goals and %d entries from %s\n",
			len(snap.Goals), len(snap.Entries), args[0])
	}
	return nil
}

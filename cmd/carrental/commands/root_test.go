package commands

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"carrental/internal/app/dto"
	domaincars "carrental/internal/domain/cars"
)

func writeDataset(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	files := map[string]string{
		"cars.json":        `[{"id": "c1", "name": "Uno", "releaseYear": 2019, "available": true, "gasAvailable": true}]`,
		"carCategory.json": `[{"id": "economy", "name": "Economy", "carIds": ["c1"], "price": 37.6}, {"id": "broken", "name": "Broken", "carIds": ["zz"], "price": 10}]`,
		"customers.json":   `[{"id": "ana", "name": "Ana", "age": 20}, {"id": "teen", "name": "Teen", "age": 16}]`,
	}
	for name, body := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(body), 0o644))
	}
	return dir
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	dataDir, taxTable, asJSON, appCtx = "", "", false, nil
	t.Setenv("LOG_FORMAT", "text")
	t.Setenv("LOG_LEVEL", "error")
	t.Setenv("TIMEZONE", "UTC")

	root := newRootCmd()
	var out, errOut bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestRentCommandJSON(t *testing.T) {
	dir := writeDataset(t)

	out, err := run(t, "rent", "--data-dir", dir, "--customer", "ana", "--category", "economy", "--days", "5", "--json")
	require.NoError(t, err)

	var tx dto.Transaction
	require.NoError(t, json.Unmarshal([]byte(out), &tx))
	assert.Equal(t, "c1", tx.Car.ID)
	assert.Equal(t, "R$\u00a0206,80", tx.Amount)
	assert.Equal(t, int64(20680), tx.TotalCents)
	assert.Equal(t, 5, tx.Days)
	assert.NotEmpty(t, tx.ID)
	assert.NotEmpty(t, tx.DueDate)
}

func TestQuoteCommandText(t *testing.T) {
	dir := writeDataset(t)

	out, err := run(t, "quote", "--data-dir", dir, "--customer", "ana", "--category", "economy", "--days", "5")
	require.NoError(t, err)
	assert.Contains(t, out, "R$\u00a0206,80 for 5 day(s)")
}

func TestPickCommand(t *testing.T) {
	dir := writeDataset(t)

	out, err := run(t, "pick", "--data-dir", dir, "--category", "economy")
	require.NoError(t, err)
	assert.Contains(t, out, "Uno [c1] 2019")
}

func TestTaxesCommandUsesTaxFile(t *testing.T) {
	dir := writeDataset(t)
	taxes := filepath.Join(dir, "taxes.yaml")
	require.NoError(t, os.WriteFile(taxes, []byte("rules:\n  - {from: 40, to: 50, multiplier: 1.3}\n"), 0o644))

	out, err := run(t, "taxes", "--data-dir", dir, "--taxes", taxes, "--json")
	require.NoError(t, err)

	var rules []dto.TaxRule
	require.NoError(t, json.Unmarshal([]byte(out), &rules))
	assert.Equal(t, []dto.TaxRule{{From: 40, To: 50, Multiplier: 1.3}}, rules)
}

func TestCommandFailures(t *testing.T) {
	dir := writeDataset(t)

	_, err := run(t, "rent", "--data-dir", dir, "--customer", "teen", "--category", "economy", "--days", "2")
	assert.ErrorIs(t, err, domaincars.ErrNoMatchingTaxRule)

	_, err = run(t, "rent", "--data-dir", dir, "--customer", "ana", "--category", "broken", "--days", "2")
	assert.ErrorIs(t, err, domaincars.ErrCarNotFound)

	_, err = run(t, "quote", "--data-dir", t.TempDir(), "--customer", "ana", "--category", "economy")
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestFailedCommandClosesApplication(t *testing.T) {
	closed := 0
	logger = slog.New(slog.DiscardHandler)
	appCtx = &application{closers: []func(context.Context) error{
		func(context.Context) error { closed++; return nil },
	}}
	t.Cleanup(func() { appCtx = nil })

	cmd := &cobra.Command{Use: "rent"}
	cmd.SetContext(context.Background())
	cmd.SetErr(&bytes.Buffer{})
	boom := errors.New("boom")

	err := runE(func(*cobra.Command) error { return boom })(cmd, nil)
	require.ErrorIs(t, err, boom)
	assert.Equal(t, 1, closed)
	assert.Nil(t, appCtx)

	require.NoError(t, closeApplication(cmd))
	assert.Equal(t, 1, closed)
}

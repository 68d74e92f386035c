package main

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"github.com/anindyar/dompet/internal/cli"
	"github.com/anindyar/dompet/internal/model"
)

// sampleDescriptions feed the generator with plausible expenses per category.
var sampleDescriptions = map[string][]struct {
	desc string
	min  float64
	max  float64
}{
	"Makanan & Minuman": {
		{"Makan siang warteg", 15000, 35000},
		{"Kopi", 20000, 45000},
		{"Belanja bulanan", 200000, 600000},
		{"Makan malam keluarga", 100000, 300000},
	},
	"Transportasi": {
		{"Ojek online", 10000, 40000},
		{"Bensin", 50000, 150000},
		{"Parkir", 2000, 10000},
	},
	"Belanja": {
		{"Baju", 100000, 400000},
		{"Peralatan rumah", 50000, 250000},
	},
	"Hiburan": {
		{"Tiket bioskop", 40000, 60000},
		{"Langganan streaming", 50000, 190000},
	},
	"Kesehatan": {
		{"Obat", 20000, 100000},
		{"Vitamin", 50000, 150000},
	},
	"Pendidikan": {
		{"Buku", 75000, 200000},
		{"Kursus online", 150000, 500000},
	},
	"Tagihan": {
		{"Listrik", 200000, 500000},
		{"Internet", 300000, 450000},
		{"Air", 50000, 150000},
	},
	"Lain-lain": {
		{"Donasi", 25000, 100000},
		{"Kado", 50000, 250000},
	},
}

func seedCmd() *cobra.Command {
	var (
		months   int
		perMonth int
		seed     int64
	)

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Insert generated sample expenses",
		Long: `Insert randomly generated but realistic expenses for the last N months.

Useful for trying out summaries, analyses, charts, and exports on a fresh
database.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			rng := rand.New(rand.NewSource(seed))

			categories := make([]string, 0, len(sampleDescriptions))
			for name := range sampleDescriptions {
				categories = append(categories, name)
			}

			bar := progressbar.NewOptions(months*perMonth,
				progressbar.OptionSetDescription("Generating expenses"),
				progressbar.OptionShowCount(),
				progressbar.OptionClearOnFinish(),
			)

			now := time.Now()
			total := 0
			for m := 0; m < months; m++ {
				monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.Local).AddDate(0, -m, 0)
				daysInMonth := monthStart.AddDate(0, 1, -1).Day()

				expenses := make([]model.Expense, 0, perMonth)
				for i := 0; i < perMonth; i++ {
					category := categories[rng.Intn(len(categories))]
					samples := sampleDescriptions[category]
					sample := samples[rng.Intn(len(samples))]

					amount := sample.min + rng.Float64()*(sample.max-sample.min)
					expenses = append(expenses, model.Expense{
						Date:        monthStart.AddDate(0, 0, rng.Intn(daysInMonth)),
						Category:    category,
						Amount:      float64(int(amount/500)) * 500,
						Description: sample.desc,
					})
					_ = bar.Add(1)
				}

				if err := store.AddExpenses(ctx, expenses); err != nil {
					return fmt.Errorf("failed to insert sample expenses: %w", err)
				}
				total += len(expenses)
			}

			fmt.Println(cli.SuccessStyle.Render(fmt.Sprintf("✓ Inserted %d sample expenses across %d months", total, months)))

			return nil
		},
	}

	cmd.Flags().IntVarP(&months, "months", "n", 6, "number of months to generate, counting back from now")
	cmd.Flags().IntVarP(&perMonth, "per-month", "p", 30, "expenses per month")
	cmd.Flags().Int64Var(&seed, "seed", time.Now().UnixNano(), "random seed")

	return cmd
}

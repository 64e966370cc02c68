package cmd

import (
	"bytes"
	"fmt"

	"github.com/AhmedAbdelaal2001/dreamfusionacc/field"
	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli"
)

// Print the field configuration and its optimizer parameter groups.
func Info(ctx *cli.Context) error {
	setupLogging(ctx)

	opts, err := fieldOptions(ctx)
	if err != nil {
		return err
	}

	f, err := field.New(opts)
	if err != nil {
		return err
	}

	logger.Noticef(
		"radiance field: bounds [%v %v], unbounded=%t, viewdirs=%t, embedding width %d",
		opts.Bounds.Min, opts.Bounds.Max, opts.Unbounded, opts.UseViewDirs, f.EmbeddingDims(),
	)

	baseLR := float32(ctx.Float64("lr"))
	displayParamGroups(f.ParamGroups(baseLR))

	return nil
}

func displayParamGroups(groups []field.ParamGroup) {
	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"Group", "Learning rate", "Parameters"})

	var total int
	for _, group := range groups {
		total += group.ParamCount
		table.Append([]string{
			group.Name,
			fmt.Sprintf("%g", group.LR),
			fmt.Sprintf("%d", group.ParamCount),
		})
	}
	table.SetFooter([]string{"", "TOTAL", fmt.Sprintf("%d", total)})

	table.Render()
	logger.Noticef("parameter groups\n%s", buf.String())
}

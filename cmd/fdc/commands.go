package main

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/jsamuelsen/go-fdc/pkg/fdc"
	"github.com/jsamuelsen/go-fdc/pkg/food"
)

func reportFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:  "format",
			Value: string(food.FormatAbridged),
			Usage: "report format (abridged, full)",
		},
		&cli.StringSliceFlag{
			Name:  "nutrient",
			Usage: "nutrient number to include; repeat or separate with commas (max 25)",
		},
	}
}

func pageFlags(pageSize int) []cli.Flag {
	return []cli.Flag{
		&cli.StringSliceFlag{
			Name:  "data-type",
			Usage: "data type filter: foundation, sr, branded, survey; repeatable",
		},
		&cli.IntFlag{
			Name:  "page-size",
			Value: pageSize,
			Usage: "results per page (1-200)",
		},
		&cli.IntFlag{
			Name:  "page",
			Value: 1,
			Usage: "page number, starting at 1",
		},
		&cli.StringFlag{
			Name:  "sort",
			Value: "description",
			Usage: "sort field (dataType, description, fdcId, publishedDate)",
		},
		&cli.BoolFlag{
			Name:  "reverse",
			Usage: "sort descending",
		},
	}
}

func getCommand(s *session) *cli.Command {
	return &cli.Command{
		Name:      "get",
		Usage:     "fetch one food by FDC ID",
		ArgsUsage: "<fdc-id>",
		Flags:     reportFlags(),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if cmd.NArg() != 1 {
				return errors.New("get takes exactly one FDC ID")
			}

			id, err := parseID(cmd.Args().First())
			if err != nil {
				return err
			}

			nutrients, err := parseNutrients(cmd.StringSlice("nutrient"))
			if err != nil {
				return err
			}

			if err := s.open(cmd); err != nil {
				return err
			}

			format := food.ReportFormat(cmd.String("format"))

			if s.raw {
				body, err := s.svc.GetFoodRaw(ctx, id, format, nutrients...)
				if err != nil {
					return err
				}

				return s.write(body)
			}

			item, err := s.svc.GetFood(ctx, id, format, nutrients...)
			if err != nil {
				return err
			}

			return s.write(item)
		},
	}
}

func foodsCommand(s *session) *cli.Command {
	return &cli.Command{
		Name:      "foods",
		Usage:     "fetch several foods by FDC ID",
		ArgsUsage: "<fdc-id>...",
		Flags:     reportFlags(),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if cmd.NArg() == 0 {
				return errors.New("foods takes at least one FDC ID")
			}

			ids := make([]int, 0, cmd.NArg())
			for _, arg := range cmd.Args().Slice() {
				id, err := parseID(arg)
				if err != nil {
					return err
				}

				ids = append(ids, id)
			}

			nutrients, err := parseNutrients(cmd.StringSlice("nutrient"))
			if err != nil {
				return err
			}

			if err := s.open(cmd); err != nil {
				return err
			}

			format := food.ReportFormat(cmd.String("format"))

			if s.raw {
				body, err := s.svc.GetFoodsRaw(ctx, ids, format, nutrients...)
				if err != nil {
					return err
				}

				return s.write(body)
			}

			items, err := s.svc.GetFoods(ctx, ids, format, nutrients...)
			if err != nil {
				return err
			}

			return s.write(items)
		},
	}
}

func listCommand(s *session) *cli.Command {
	return &cli.Command{
		Name:  "list",
		Usage: "list one page of foods",
		Flags: pageFlags(fdc.DefaultListPageSize),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if cmd.NArg() != 0 {
				return errors.New("list takes no arguments")
			}

			req, err := listRequest(cmd)
			if err != nil {
				return err
			}

			if err := s.open(cmd); err != nil {
				return err
			}

			if s.raw {
				body, err := s.svc.ListFoodsRaw(ctx, req)
				if err != nil {
					return err
				}

				return s.write(body)
			}

			items, err := s.svc.ListFoods(ctx, req)
			if err != nil {
				return err
			}

			return s.write(items)
		},
	}
}

func searchCommand(s *session) *cli.Command {
	flags := append(pageFlags(fdc.DefaultSearchPageSize), &cli.StringFlag{
		Name:  "brand",
		Usage: "brand owner filter (branded foods only)",
	})

	return &cli.Command{
		Name:      "search",
		Usage:     "search foods",
		ArgsUsage: "<query>",
		Flags:     flags,
		Action: func(ctx context.Context, cmd *cli.Command) error {
			query := strings.Join(cmd.Args().Slice(), " ")

			list, err := listRequest(cmd)
			if err != nil {
				return err
			}

			req := fdc.SearchRequest{
				ListRequest: list,
				Query:       query,
				BrandOwner:  cmd.String("brand"),
			}

			if err := s.open(cmd); err != nil {
				return err
			}

			if s.raw {
				body, err := s.svc.SearchFoodsRaw(ctx, req)
				if err != nil {
					return err
				}

				return s.write(body)
			}

			result, err := s.svc.SearchFoods(ctx, req)
			if err != nil {
				return err
			}

			return s.write(result)
		},
	}
}

func listRequest(cmd *cli.Command) (fdc.ListRequest, error) {
	req := fdc.DefaultListRequest()

	if values := cmd.StringSlice("data-type"); len(values) > 0 {
		req.DataTypes = req.DataTypes[:0]

		for _, v := range values {
			dt, err := parseDataType(v)
			if err != nil {
				return fdc.ListRequest{}, err
			}

			req.DataTypes = append(req.DataTypes, dt)
		}
	}

	// Unknown sort names pass through and are rejected by the client.
	req.SortBy, _ = food.ParseSorting(cmd.String("sort"))
	req.PageSize = cmd.Int("page-size")
	req.PageNumber = cmd.Int("page")
	req.Reverse = cmd.Bool("reverse")

	return req, nil
}

func parseID(s string) (int, error) {
	id, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("invalid FDC ID %q", s)
	}

	return id, nil
}

// parseNutrients accepts repeated values and comma separated lists.
func parseNutrients(values []string) ([]int, error) {
	var nutrients []int

	for _, v := range values {
		for _, part := range strings.Split(v, ",") {
			part = strings.TrimSpace(part)
			if part == "" {
				continue
			}

			n, err := strconv.Atoi(part)
			if err != nil {
				return nil, fmt.Errorf("invalid nutrient number %q", part)
			}

			nutrients = append(nutrients, n)
		}
	}

	return nutrients, nil
}

var dataTypeAliases = map[string]food.DataType{
	"foundation": food.DataTypeFoundation,
	"sr":         food.DataTypeSRLegacy,
	"sr legacy":  food.DataTypeSRLegacy,
	"sr_legacy":  food.DataTypeSRLegacy,
	"branded":    food.DataTypeBranded,
	"survey":     food.DataTypeSurvey,
	"fndds":      food.DataTypeSurvey,
}

func parseDataType(s string) (food.DataType, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	if dt, ok := dataTypeAliases[key]; ok {
		return dt, nil
	}

	for _, dt := range food.SupportedDataTypes() {
		if strings.EqualFold(key, string(dt)) {
			return dt, nil
		}
	}

	return "", fmt.Errorf("unknown data type %q", s)
}

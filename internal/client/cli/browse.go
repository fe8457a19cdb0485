package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/smarttrace/smarttrace-cli/internal/client/listview"
	"github.com/smarttrace/smarttrace-cli/internal/client/models"
	"github.com/smarttrace/smarttrace-cli/internal/client/services"
)

// Browse fetches a listing and drops into the pager. With mine set, the
// lost/found listings are scoped to the logged-in user's reports.
func (a *App) Browse(ctx context.Context, resource string, mine bool) error {
	if mine && resource != "lost" && resource != "found" {
		fmt.Fprintln(a.out, "Usage: mine <lost|found>")
		return nil
	}

	switch resource {
	case "lost":
		res, err := fetchListing(ctx, a, mine, a.lost.List, a.lost.ListMine)
		if err != nil {
			return err
		}
		runPager(a.reader, a.out, res.Items, a.config.PageSize,
			[]listview.Field[models.LostItem]{
				func(i models.LostItem) string { return i.Title },
				func(i models.LostItem) string { return i.Category },
				func(i models.LostItem) string { return i.Brand },
				func(i models.LostItem) string { return i.SerialNumber },
				func(i models.LostItem) string { return i.District },
			},
			func(i models.LostItem) string {
				return fmt.Sprintf("%-6s %-28s %-10s %s", i.ID, i.Title, i.Category, i.District)
			})

	case "found":
		res, err := fetchListing(ctx, a, mine, a.found.List, a.found.ListMine)
		if err != nil {
			return err
		}
		runPager(a.reader, a.out, res.Items, a.config.PageSize,
			[]listview.Field[models.FoundItem]{
				func(i models.FoundItem) string { return i.Name },
				func(i models.FoundItem) string { return i.Category },
				func(i models.FoundItem) string { return i.SerialNumber },
				func(i models.FoundItem) string { return i.Location },
			},
			func(i models.FoundItem) string {
				return fmt.Sprintf("%-6s %-28s %-10s %s", i.ID, i.Name, i.Category, i.Location)
			})

	case "contacts":
		res, err := a.contacts.List(ctx)
		if err != nil {
			a.printErr(err)
			return err
		}
		a.noteCached(res.FromCache)
		runPager(a.reader, a.out, res.Items, a.config.PageSize,
			[]listview.Field[models.ContactMessage]{
				func(m models.ContactMessage) string { return m.FirstName },
				func(m models.ContactMessage) string { return m.LastName },
				func(m models.ContactMessage) string { return m.Email },
				func(m models.ContactMessage) string { return m.Subject },
			},
			func(m models.ContactMessage) string {
				return fmt.Sprintf("%-6s %-24s %s", m.ID, m.Email, m.Subject)
			})

	case "users":
		res, err := a.users.List(ctx)
		if err != nil {
			a.printErr(err)
			return err
		}
		a.noteCached(res.FromCache)
		runPager(a.reader, a.out, res.Items, a.config.PageSize,
			[]listview.Field[models.User]{
				func(u models.User) string { return u.Name },
				func(u models.User) string { return u.LastName },
				func(u models.User) string { return u.Email },
				func(u models.User) string { return u.Location },
			},
			func(u models.User) string {
				return fmt.Sprintf("%-6s %-24s %s %s", u.ID, u.Email, u.Name, u.LastName)
			})

	case "matches":
		res, err := a.matches.List(ctx)
		if err != nil {
			a.printErr(err)
			return err
		}
		a.noteCached(res.FromCache)
		runPager(a.reader, a.out, res.Items, a.config.PageSize,
			[]listview.Field[models.MatchRecord]{
				func(m models.MatchRecord) string { return m.Status },
				func(m models.MatchRecord) string { return m.Loster.Email },
				func(m models.MatchRecord) string { return m.Founder.Email },
			},
			func(m models.MatchRecord) string {
				return fmt.Sprintf("%-6s %-10s lost:%s found:%s", m.ID, m.Status, m.Loster.Email, m.Founder.Email)
			})

	default:
		fmt.Fprintln(a.out, "Unknown resource:", resource)
	}

	return nil
}

// fetchListing picks the full or owner-scoped query and reports errors
// through the app's printer.
func fetchListing[T any](ctx context.Context, a *App, mine bool,
	list, listMine func(context.Context) (*services.ListResult[T], error)) (*services.ListResult[T], error) {

	fetch := list
	if mine {
		fetch = listMine
	}
	res, err := fetch(ctx)
	if err != nil {
		a.printErr(err)
		return nil, err
	}
	a.noteCached(res.FromCache)
	return res, nil
}

func (a *App) noteCached(fromCache bool) {
	if fromCache {
		fmt.Fprintln(a.out, "(backend unreachable; showing the last fetched copy)")
	}
}

// runPager drives a listview controller over an already-fetched list.
// Commands: n/p next & previous page, f/l first & last, g N jump,
// / <text> filter, c clear filter, q back to the main prompt.
func runPager[T any](reader *bufio.Reader, out io.Writer, items []T, pageSize int, fields []listview.Field[T], render func(T) string) {
	ctrl := listview.New(pageSize, fields...)
	ctrl.SetItems(items)

	for {
		printPage(out, ctrl, render)

		fmt.Fprint(out, "list> ")
		line, err := reader.ReadString('\n')
		if err != nil {
			return
		}
		line = strings.TrimSpace(line)

		switch {
		case line == "q" || line == "quit":
			return
		case line == "n":
			ctrl.Next()
		case line == "p":
			ctrl.Previous()
		case line == "f":
			ctrl.First()
		case line == "l":
			ctrl.Last()
		case line == "c":
			ctrl.SetQuery("")
		case strings.HasPrefix(line, "g "):
			if n, err := strconv.Atoi(strings.TrimSpace(line[2:])); err == nil {
				ctrl.GoTo(n)
			} else {
				fmt.Fprintln(out, "Usage: g <page>")
			}
		case strings.HasPrefix(line, "/"):
			ctrl.SetQuery(strings.TrimSpace(line[1:]))
		case line == "":
			// re-render
		default:
			fmt.Fprintln(out, "Commands: n p f l g <page> /<text> c q")
		}
	}
}

func printPage[T any](out io.Writer, ctrl *listview.Controller[T], render func(T) string) {
	page := ctrl.Snapshot()

	if page.TotalCount == 0 {
		if ctrl.Query() != "" {
			fmt.Fprintln(out, "No results match your search.")
		} else {
			fmt.Fprintln(out, "Nothing to show.")
		}
		return
	}

	for _, item := range page.Items {
		fmt.Fprintln(out, render(item))
	}
	fmt.Fprintf(out, "Showing %d to %d of %d results (page %d of %d)\n",
		page.FirstIndexShown, page.LastIndexShown, page.TotalCount,
		page.CurrentPage, page.TotalPages)
}

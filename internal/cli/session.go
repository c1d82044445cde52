package cli

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog"

	"github.com/noah-isme/kasir/internal/catalog"
	"github.com/noah-isme/kasir/internal/checkout"
)

const (
	cmdDone = "DONE"
	cmdHelp = "HELP"
)

// Session drives one interactive checkout over a reader/writer pair. The pair
// is injected so tests can feed a scripted transcript.
type Session struct {
	Engine   *checkout.Engine
	Store    *catalog.Store
	Currency string
	Log      zerolog.Logger
}

// Run reads product codes line by line until the done sentinel or EOF, then
// prints the receipt. Unknown codes print an error line without touching the
// cart; help prints usage without touching the session.
func (s *Session) Run(in io.Reader, out io.Writer) error {
	fmt.Fprintln(out, "=== Supermarket Checkout ===")
	s.printProducts(out)
	fmt.Fprintf(out, "\nEnter a product code to scan ('done' to finish, 'help' for instructions):\n")

	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprint(out, "Scan: ")
		if !scanner.Scan() {
			break
		}
		input := strings.ToUpper(strings.TrimSpace(scanner.Text()))
		if input == cmdDone {
			break
		}
		if input == cmdHelp {
			s.PrintHelp(out)
			continue
		}
		if total, ok := s.Engine.Scan(input); ok {
			fmt.Fprintf(out, "Scanned: %s\n", input)
			fmt.Fprintf(out, "Current Total: %s%s\n", s.Currency, total.StringFixed(2))
		} else {
			fmt.Fprintf(out, "Invalid code: %s. Valid codes: %s\n",
				input, strings.Join(s.Store.Codes(), ", "))
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read input: %w", err)
	}

	s.printReceipt(out)
	s.Log.Info().
		Int("items", len(s.Engine.Items())).
		Str("total", s.Engine.Total().StringFixed(2)).
		Msg("session finished")
	return nil
}

func (s *Session) printProducts(out io.Writer) {
	fmt.Fprintln(out, "Available Products:")
	for _, p := range s.Store.Products() {
		fmt.Fprintf(out, "- %s: %s (%s%s)\n", p.Code, p.Name, s.Currency, p.Price.StringFixed(2))
	}
}

func (s *Session) printReceipt(out io.Writer) {
	items := s.Engine.Items()
	if len(items) == 0 {
		fmt.Fprintln(out, "No items scanned.")
		return
	}

	fmt.Fprintln(out, "\n=== Checkout Ticket ===")
	fmt.Fprintln(out, "Items:")
	for _, it := range items {
		fmt.Fprintf(out, "- %s: %s x%d @ %s%s = %s%s\n",
			it.Code(), it.Name(), it.Quantity(),
			s.Currency, it.UnitPrice().StringFixed(2),
			s.Currency, it.TotalAmount().StringFixed(2))
	}
	fmt.Fprintf(out, "Total: %s%s\n", s.Currency, s.Engine.Total().StringFixed(2))
	fmt.Fprintln(out, "====================")
}

// PrintHelp writes usage instructions. It never mutates the cart.
func (s *Session) PrintHelp(out io.Writer) {
	fmt.Fprintf(out, `Supermarket Checkout (interactive)

Instructions:
  - Enter a product code (e.g. GR1) to scan an item.
  - Enter 'done' to finish and see the ticket.
  - Enter 'help' to see these instructions.
  - Pricing rules (BOGO, bulk discounts) are applied automatically.

Valid product codes: %s
`, strings.Join(s.Store.Codes(), ", "))
}

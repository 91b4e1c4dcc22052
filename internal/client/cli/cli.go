// Package cli implements the point-of-sale command line: sales,
// returns, invoice views, queue synchronization and closing the day.
package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/dukkan-app/dukkan/internal/client/closeday"
	"github.com/dukkan-app/dukkan/internal/client/invoices"
	"github.com/dukkan-app/dukkan/internal/client/netstate"
	"github.com/dukkan-app/dukkan/internal/client/stock"
	"github.com/dukkan-app/dukkan/internal/client/sync"
)

type Cli struct {
	invoiceService  *invoices.Service
	stockService    *stock.Service
	closeDayService *closeday.Service
	syncService     *sync.Service
	net             *netstate.Monitor
	out             io.Writer
}

func New(
	invoiceService *invoices.Service,
	stockService *stock.Service,
	closeDayService *closeday.Service,
	syncService *sync.Service,
	net *netstate.Monitor,
) *Cli {
	return &Cli{
		invoiceService:  invoiceService,
		stockService:    stockService,
		closeDayService: closeDayService,
		syncService:     syncService,
		net:             net,
		out:             os.Stdout,
	}
}

func PrintUsage() {
	fmt.Println("Dukkan POS Client")
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Println("  pos [OPTIONS] COMMAND")
	fmt.Println()
	fmt.Println("Options:")
	fmt.Println("  --version            Show version information")
	fmt.Println("  --db PATH            Path to local database (default: dukkan-pos.db)")
	fmt.Println("  --store PATH         Path to document store database (default: dukkan-store.db)")
	fmt.Println("  --offline            Start in offline mode")
	fmt.Println()
	fmt.Println("Commands:")
	fmt.Println("  sell                 Record a sale")
	fmt.Println("  invoices             List the shop's invoices (confirmed + pending)")
	fmt.Println("  return               Return a sold item and restore its stock")
	fmt.Println("  sync                 Flush the pending operation queue")
	fmt.Println("  closeday             Close the shop's day")
	fmt.Println("  watch                Follow the shop's invoices and sync on reconnect")
	fmt.Println("  status               Show queue and connectivity status")
	fmt.Println()
	fmt.Println("Examples:")
	fmt.Println("  pos sell --shop main --employee sara --item 'A-1:shirt:2:30:50'")
	fmt.Println("  pos sell --shop main --item 'A-1:shirt:1:30:50:red:M' --client ali")
	fmt.Println("  pos invoices --shop main")
	fmt.Println("  pos return --invoice b692f5c0 --code A-1 --qty 1")
	fmt.Println("  pos closeday --shop main --by sara")
	fmt.Println("  pos --offline sell --shop main --item 'A-1:shirt:1:30:50'")
}

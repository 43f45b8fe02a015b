package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/Mukul2425/Binance-Futures-Bot/internal/binance"
	"github.com/Mukul2425/Binance-Futures-Bot/internal/config"
	"github.com/Mukul2425/Binance-Futures-Bot/internal/logging"
	"github.com/Mukul2425/Binance-Futures-Bot/internal/orders"
	"github.com/Mukul2425/Binance-Futures-Bot/internal/rest"
)

// Exit codes distinguish failure kinds for scripting
const (
	exitOK         = 0
	exitUsage      = 1
	exitValidation = 2
	exitAPI        = 3
	exitNetwork    = 4
	exitResponse   = 5
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	// A missing .env file is fine; the environment may carry everything
	_ = godotenv.Load()

	if len(args) < 1 {
		printUsage()
		return exitUsage
	}

	switch args[0] {
	case "order":
		return runOrder(args[1:])
	case "cancel":
		return runCancel(args[1:])
	case "status":
		return runStatus(args[1:])
	case "help", "-h", "--help":
		printUsage()
		return exitOK
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", args[0])
		printUsage()
		return exitUsage
	}
}

func runOrder(args []string) int {
	fs := flag.NewFlagSet("order", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	price := fs.String("price", "", "limit price, required for LIMIT and STOP_LIMIT orders")
	stopPrice := fs.String("stop-price", "", "stop trigger price, required for STOP_LIMIT orders")
	logFile := fs.String("log-file", "", "override the log file path")
	fs.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage: bot order [flags] SYMBOL SIDE TYPE QUANTITY")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return exitUsage
	}
	if fs.NArg() != 4 {
		fs.Usage()
		return exitUsage
	}

	symbol, side, orderType := fs.Arg(0), fs.Arg(1), fs.Arg(2)
	printSummary(symbol, side, orderType, fs.Arg(3), *price, *stopPrice)

	quantity, err := decimal.NewFromString(fs.Arg(3))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Invalid quantity %q: must be a number\n", fs.Arg(3))
		return exitUsage
	}
	priceDec, err := parseOptionalDecimal(*price)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Invalid price %q: must be a number\n", *price)
		return exitUsage
	}
	stopDec, err := parseOptionalDecimal(*stopPrice)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Invalid stop price %q: must be a number\n", *stopPrice)
		return exitUsage
	}

	cfg, logger, code := loadConfigAndLogger(*logFile)
	if code != exitOK {
		return code
	}

	order, err := orders.Validate(symbol, side, orderType, quantity, priceDec, stopDec)
	if err != nil {
		logger.Error().Err(err).Msg("Order validation failed")
		return failureExit(err)
	}

	client, err := binance.NewFuturesClient(&cfg.Binance, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		return exitUsage
	}
	defer client.Close()

	result, err := client.PlaceOrder(context.Background(), order)
	if err != nil {
		return failureExit(err)
	}

	fmt.Println("Order placed successfully on Binance Futures Testnet.")
	printResult(result)
	return exitOK
}

func runCancel(args []string) int {
	return runOrderRef("cancel", args, func(client *binance.Client, symbol string, orderID int64) (*binance.OrderResult, error) {
		return client.CancelOrder(context.Background(), symbol, orderID)
	}, "Order canceled.")
}

func runStatus(args []string) int {
	return runOrderRef("status", args, func(client *binance.Client, symbol string, orderID int64) (*binance.OrderResult, error) {
		return client.GetOrder(context.Background(), symbol, orderID)
	}, "Order state:")
}

// runOrderRef handles the cancel and status commands, which share the
// SYMBOL ORDER_ID argument shape
func runOrderRef(name string, args []string, call func(*binance.Client, string, int64) (*binance.OrderResult, error), successLine string) int {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	logFile := fs.String("log-file", "", "override the log file path")
	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: bot %s [flags] SYMBOL ORDER_ID\n", name)
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return exitUsage
	}
	if fs.NArg() != 2 {
		fs.Usage()
		return exitUsage
	}

	symbol := strings.ToUpper(strings.TrimSpace(fs.Arg(0)))
	orderID, err := strconv.ParseInt(fs.Arg(1), 10, 64)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Invalid order ID %q: must be an integer\n", fs.Arg(1))
		return exitUsage
	}

	cfg, logger, code := loadConfigAndLogger(*logFile)
	if code != exitOK {
		return code
	}

	client, err := binance.NewFuturesClient(&cfg.Binance, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		return exitUsage
	}
	defer client.Close()

	result, err := call(client, symbol, orderID)
	if err != nil {
		return failureExit(err)
	}

	fmt.Println(successLine)
	printResult(result)
	return exitOK
}

// loadConfigAndLogger reads the environment and builds the process
// logger, applying an optional log file override from the command line
func loadConfigAndLogger(logFileOverride string) (*config.Config, zerolog.Logger, int) {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		if strings.Contains(err.Error(), "BINANCE_API") {
			fmt.Fprintln(os.Stderr, "Set BINANCE_API_KEY and BINANCE_API_SECRET in the environment or a .env file.")
		}
		return nil, zerolog.Nop(), exitUsage
	}
	if logFileOverride != "" {
		cfg.Logging.File = logFileOverride
	}

	logger, err := logging.New(cfg.Logging)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		return nil, zerolog.Nop(), exitUsage
	}

	return cfg, logger, exitOK
}

// failureExit prints the error and maps its kind to an exit code. The
// binance layer has already logged request failures, so this only
// writes to stderr.
func failureExit(err error) int {
	var valErr *orders.ValidationError
	var apiErr *rest.APIError
	var netErr *rest.NetworkError
	var respErr *binance.UnexpectedResponseError

	switch {
	case errors.As(err, &valErr):
		fmt.Fprintf(os.Stderr, "Validation error: %v\n", err)
		return exitValidation
	case errors.As(err, &apiErr):
		fmt.Fprintf(os.Stderr, "%v\n", err)
		if apiErr.IsAuthError() {
			fmt.Fprintln(os.Stderr, "Check BINANCE_API_KEY and BINANCE_API_SECRET.")
		}
		return exitAPI
	case errors.As(err, &netErr):
		fmt.Fprintf(os.Stderr, "%v\n", err)
		return exitNetwork
	case errors.As(err, &respErr):
		fmt.Fprintf(os.Stderr, "%v\n", err)
		return exitResponse
	default:
		fmt.Fprintf(os.Stderr, "%v\n", err)
		return exitUsage
	}
}

func parseOptionalDecimal(raw string) (*decimal.Decimal, error) {
	if raw == "" {
		return nil, nil
	}
	value, err := decimal.NewFromString(raw)
	if err != nil {
		return nil, err
	}
	return &value, nil
}

func printSummary(symbol, side, orderType, quantity, price, stopPrice string) {
	fmt.Println("Order summary:")
	fmt.Printf("  %-14s%s\n", "symbol:", symbol)
	fmt.Printf("  %-14s%s\n", "side:", side)
	fmt.Printf("  %-14s%s\n", "type:", orderType)
	fmt.Printf("  %-14s%s\n", "quantity:", quantity)
	if price != "" {
		fmt.Printf("  %-14s%s\n", "price:", price)
	}
	if stopPrice != "" {
		fmt.Printf("  %-14s%s\n", "stopPrice:", stopPrice)
	}
}

func printResult(result *binance.OrderResult) {
	avgPrice := result.AvgPrice
	if avgPrice == "" {
		avgPrice = "-"
	}
	fmt.Printf("  %-14s%d\n", "orderId:", result.OrderID)
	fmt.Printf("  %-14s%s\n", "status:", result.Status)
	fmt.Printf("  %-14s%s\n", "executedQty:", result.ExecutedQty)
	fmt.Printf("  %-14s%s\n", "avgPrice:", avgPrice)
}

func printUsage() {
	fmt.Fprint(os.Stderr, `Binance USDT-M Futures Testnet trading bot

Usage:
  bot order [flags] SYMBOL SIDE TYPE QUANTITY
  bot cancel [flags] SYMBOL ORDER_ID
  bot status [flags] SYMBOL ORDER_ID
  bot help

Commands:
  order    place a MARKET, LIMIT, or STOP_LIMIT order
  cancel   cancel an open order by ID
  status   show the current state of an order

Order flags:
  -price       limit price, required for LIMIT and STOP_LIMIT orders
  -stop-price  stop trigger price, required for STOP_LIMIT orders
  -log-file    override the log file path

Credentials are read from BINANCE_API_KEY and BINANCE_API_SECRET,
optionally via a .env file in the working directory.
`)
}

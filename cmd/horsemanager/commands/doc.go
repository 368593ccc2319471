// Package commands defines the horsemanager CLI.
//
// Without a subcommand the interactive shop UI starts. The subcommands work
// on the same saved game without taking over the terminal:
//
//   - shop       List the horses and jockeys for sale
//   - stable     List the player's horses and jockeys
//   - buy        Buy an item from the shop by ID or name
//   - sell       Sell one of the player's items by ID or name
//   - find       Search every catalog by name
//   - next-day   Advance the in-game date and restock the shop
//   - holidays   List the yearly holidays and the next one
//   - ledger     List or export the trade ledger
//   - version    Print the version
//
// The root command loads the configuration and opens the saved game before
// any subcommand runs, and saves and closes it afterwards.
package commands

// Package telegram sends match notifications through the Telegram Bot API.
//
// Messages use Telegram's HTML parse mode. Authentication requires a bot token
// (from @BotFather) and a chat ID, which may be numeric or a public channel
// username such as "@ffcv_meliana".
package telegram

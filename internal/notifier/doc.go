// Package notifier posts the tracked team's new results to external channels.
//
// Implementations exist for Twitter (OAuth1 against the v1.1 statuses API), Telegram
// and a dry run that writes the would-be posts to a writer.
package notifier

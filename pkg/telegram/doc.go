// Package telegram delivers sealed envelopes through the Telegram Bot
// API. It implements exactly the two calls the pipeline needs:
// sendDocument for delivery and getUpdates for chat-id discovery.
//
// Broadcast fans a document out to every configured chat id, best
// effort: each failure is joined into the returned error, and one bad
// recipient never blocks the rest. There is no retry logic; delivery
// is fire-and-forget.
//
// # Usage
//
//	client, err := telegram.New(token)
//	if err != nil {
//	    // handle error
//	}
//
//	err = client.Broadcast(ctx, chatIDs, telegram.Document{
//	    Name: "2024-02-18T09:30:01+08:00.jpg.txt",
//	    Data: sealed,
//	})
//
// Sentinel errors (ErrEmptyToken, ErrNoChatIDs, ErrRequestFailed,
// ErrAPIError) are matched with errors.Is.
package telegram

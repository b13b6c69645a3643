// Package roommatch embeds the roommate matching engine in a Go program
// without running the HTTP server.
//
// The client reads users and listings from Postgres and keeps feed
// sessions, matches and saved searches in Redis.
//
//	client, _ := roommatch.New(ctx,
//	    roommatch.WithPostgres("postgres://localhost/roommatch?sslmode=disable"),
//	    roommatch.WithRedis("localhost:6379", ""),
//	)
//	defer client.Close()
//
//	view, _ := client.Feeds().Open(ctx, "u1", roommatch.FeedFilters{City: "Madrid"})
//	if view.Current != nil {
//	    res, _ := client.Feeds().Accept(ctx, "u1", view.Current.Candidate.ID)
//	    fmt.Println(res.Outcome.Match != nil)
//	}
//
//	page, _ := client.Properties().Search(ctx, roommatch.PropertyQuery{
//	    City:     "Madrid",
//	    MaxPrice: roommatch.Price(900),
//	}, roommatch.Page{Sort: roommatch.SortPriceAsc})
package roommatch

// Package fireeagle provides a client for the Fire Eagle location-sharing
// API.
//
// Every signed request carries the application id, a seconds-since-epoch
// timestamp and a trailing "sig" parameter: the lowercase hex SHA-1 of the
// shared secret followed by every other parameter as key/value pairs in
// byte-ascending key order (see Sign).
//
// # Usage
//
//	logger := zerolog.New(os.Stderr)
//	client, err := fireeagle.NewClient(
//		"app-key",
//		"app-secret",
//		xmldoc.HandlerXPath,
//		logger,
//		fireeagle.WithAuthToken("user-token"),
//	)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	doc, err := client.QueryLocation(context.Background(), "")
//	if err != nil {
//		log.Fatal(err)
//	}
//	loc := fireeagle.LocationFromDocument(doc)
//
// # Error Handling
//
// All operations return *Error. Failures classify as one of four kinds,
// matched with errors.Is against the package sentinels:
//
//   - ErrConfig: invalid or missing configuration (construction time)
//   - ErrTransport: network failure or non-2xx HTTP status
//   - ErrParse: response body was not parseable XML
//   - ErrAPI: well-formed response explicitly reporting an error
//
// Every failure is logged through the injected logger before it is
// returned; nothing is retried internally.
package fireeagle

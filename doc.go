// Package datefmt provides pattern based date formatting and parsing with per-goroutine formatter cache.
// Focused on bulk formatting where the same patterns are used repeatedly by many concurrent workers.
//
// Features:
//
//  - SimpleDateFormat compatible patterns ("yyyy-MM-dd HH:mm:ss", "EEE, d MMM yyyy HH:mm:ss Z").
//  - Locale aware month, weekday, am/pm and era names, locale aware week numbering.
//  - Formatters are cached by pattern and locale, time zone is applied per request without rebuild.
//  - Each Cache is owned by a single goroutine, no locks and no shared mutable state.
//  - Missing locale and time zone are resolved from ambient defaults on every request.
//  - Invalid patterns and unparseable input are reported with typed errors, nothing is swallowed.
//  - Allows logging, stats collection.
//  - Worker fan-out with a private cache per worker.
package datefmt

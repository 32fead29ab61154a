// Package compound retrieves historical financial time series and turns
// them into compounded growth-factor series for charting or analysis.
//
// The core functionalities include:
//   - Data Retrieval: Fetching daily equity prices (Yahoo Finance chart
//     API) and monthly consumer price index values (FRED) over a
//     configurable horizon of years.
//   - Annual Aggregation: Reducing a raw series to one percentage rate
//     per calendar year, either as the first-to-last price change of the
//     year or as the year-over-year change of the annual mean.
//   - Compounding: Turning per-year rates into a cumulative growth-factor
//     series anchored at 1.0, rounded once after the full chain.
//   - Fallback Tables: Static historical rates compiled into the program,
//     served through the same source interface as live providers, so a
//     dataset degrades to well-known values when a provider is
//     unreachable or misconfigured.
//
// Each dataset is exposed as a method on Service that never returns an
// error: any failure on the live path is logged and the static table is
// used instead. This package serves as the foundational logic for the
// `cgs` command-line tool.
package compound

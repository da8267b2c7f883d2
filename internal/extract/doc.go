// Package extract implements the pipeline that pulls the embedded
// CurseForge API key out of the remote installer package.
//
// # Pipeline
//
// The Extractor performs four ordered steps, failing fast on the first
// error:
//
//  1. Ranged fetch: GET the target's byte range with a Range header.
//  2. Decompression: inflate the fetched bytes as a zlib stream.
//  3. Marker scan: find the first occurrence of the marker prefix.
//  4. Value extraction: take the bytes up to the next terminator.
//
// # Basic Usage
//
//	extractor := extract.NewExtractor(model.DefaultTarget(), model.DefaultMarker(),
//	    func(event extract.ProgressEvent) {
//	        fmt.Println(event.Message)
//	    })
//
//	key, err := extractor.Run(ctx)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(key)
//
// # Error Classification
//
// Every failure is terminal and tagged with a Kind:
//
//   - KindNetwork: transport/protocol failure during the fetch
//   - KindDecompression: fetched bytes are not a valid zlib stream
//   - KindMarkerNotFound: decompressed bytes lack the marker
//   - KindUnterminatedValue: marker present but no closing delimiter
//   - KindUnclassified: anything else
//
// Use KindOf to recover the classification from a returned error.
// There are no retries and no partial success: a run either returns
// the full key or nothing.
//
// # Progress Tracking
//
// Progress is reported via a callback that receives ProgressEvent:
//
//	type ProgressEvent struct {
//	    Message string
//	    Level   ProgressLevel // Info, Verbose, Warning, Error, Success
//	}
package extract

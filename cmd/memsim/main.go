// Command memsim simulates a contiguous memory allocator with first-fit,
// best-fit and worst-fit placement, release, coalescing and compaction.
package main

func main() {
	execute()
}

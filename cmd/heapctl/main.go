// heapctl exercises and inspects linearcore heaps: it runs allocation
// workloads against in-memory or file-backed regions and dumps the
// block structure of persisted heap images.
package main

func main() {
	execute()
}

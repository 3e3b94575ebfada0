// Command markovctl analyzes finite Markov chains stored as transition-matrix
// files and generates fixture chains.
//
// Usage:
//
//	markovctl analyze chain.yaml
//	markovctl committor chain.yaml --from 0 --to 4 [--backward]
//	markovctl generate random-walk --states 5 --p 0.5 > walk.yaml
package main

func main() {
	Execute()
}

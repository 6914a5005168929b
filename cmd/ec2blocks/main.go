// Package main provides the ec2blocks CLI: declarative invocation of EC2
// networking operations from YAML or JSON config blocks.
package main

func main() {
	Execute()
}

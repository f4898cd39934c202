package blockmodel_test

import (
	"fmt"

	"github.com/baranwa2/RandomWalkGCN/blockmodel"
)

// ExamplePerturb shifts density into block 0 while keeping the expected edge
// count nearly unchanged.
func ExamplePerturb() {
	part, _ := blockmodel.FromFractions(1000, 0.4, 0.6)
	base, _ := blockmodel.TwoBlock(0.6, 0.3, 0.1)
	pert, _ := blockmodel.Perturb(base, 0.05, 0.4, 0.6)

	fmt.Println("sizes:", part)
	fmt.Printf("perturbed: %.4f %.4f %.4f\n", pert.At(0, 0), pert.At(0, 1), pert.At(1, 1))
	fmt.Printf("E[base]=%.0f E[perturbed]=%.0f\n",
		blockmodel.ExpectedEdges(part, base, blockmodel.Mode{}),
		blockmodel.ExpectedEdges(part, pert, blockmodel.Mode{}))
	// Output:
	// sizes: [400 600]
	// perturbed: 0.7250 0.0167 0.3556
	// E[base]=125790 E[perturbed]=125748
}

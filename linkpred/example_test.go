package linkpred_test

import (
	"fmt"

	"github.com/katalvlaran/gaeval/linkpred"
	"github.com/katalvlaran/gaeval/matrix"
	"gonum.org/v1/gonum/mat"
)

// ExampleEvaluate scores two true edges against two non-edges on an
// embedding that separates the two communities.
func ExampleEvaluate() {
	emb := mat.NewDense(4, 2, []float64{
		2, 0,
		2, 0,
		-2, 0,
		-2, 0.5,
	})
	ref, _ := matrix.NewSparse(4, 4)
	_ = ref.Set(0, 1, 1)
	_ = ref.Set(1, 0, 1)
	_ = ref.Set(2, 3, 1)
	_ = ref.Set(3, 2, 1)

	m, err := linkpred.Evaluate(
		[]linkpred.Pair{{U: 0, V: 1}, {U: 2, V: 3}},
		[]linkpred.Pair{{U: 0, V: 2}, {U: 1, V: 3}},
		emb, ref)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Printf("accuracy=%.2f roc_auc=%.2f ap=%.2f\n", m.Accuracy, m.ROCAUC, m.AveragePrecision)
	// Output:
	// accuracy=1.00 roc_auc=1.00 ap=1.00
}

func ExampleROCAUC() {
	labels := []bool{false, false, true, true}
	scores := []float64{0.1, 0.4, 0.35, 0.8}

	auc, _ := linkpred.ROCAUC(labels, scores)
	ap, _ := linkpred.AveragePrecision(labels, scores)
	fmt.Printf("%.4f %.4f\n", auc, ap)
	// Output:
	// 0.7500 0.8333
}

package blocking

import "testing"

func TestDistribution(t *testing.T) {
	c := buildCatalog(t, map[string]string{
		"1": "acme widget 100 pro",
		"2": "acme gizmo 200",
		"3": "acme widget 100 plus",
		"4": "sony camera",
		"5": "zz",
	})
	v, _, _ := ExtractKeys(c, PrefixKey(3))
	blocks := Partition(c, NewScanAssigner(v))

	d := blocks.Distribution(10)

	if d.Records != 5 {
		t.Errorf("Records = %d, want 5", d.Records)
	}
	if d.Assigned != 4 || d.Unassigned != 1 {
		t.Errorf("Assigned/Unassigned = %d/%d, want 4/1", d.Assigned, d.Unassigned)
	}
	if d.Blocks != 2 {
		t.Errorf("Blocks = %d, want 2", d.Blocks)
	}
	if d.Singletons != 1 {
		t.Errorf("Singletons = %d, want 1", d.Singletons)
	}
	if d.MaxSize != 3 {
		t.Errorf("MaxSize = %d, want 3", d.MaxSize)
	}
	if d.CandidatePairs != 3 {
		t.Errorf("CandidatePairs = %d, want 3", d.CandidatePairs)
	}
	if d.MeanSize != 2.0 {
		t.Errorf("MeanSize = %v, want 2.0", d.MeanSize)
	}

	if len(d.Largest) != 2 {
		t.Fatalf("Largest has %d entries, want 2", len(d.Largest))
	}
	if d.Largest[0].Key != "acm" || d.Largest[0].Size != 3 {
		t.Errorf("Largest[0] = %+v, want {acm 3}", d.Largest[0])
	}
}

func TestDistributionTopLimit(t *testing.T) {
	c := buildCatalog(t, map[string]string{
		"1": "aaa one",
		"2": "bbb two",
		"3": "ccc three",
	})
	v, _, _ := ExtractKeys(c, PrefixKey(3))
	blocks := Partition(c, NewScanAssigner(v))

	d := blocks.Distribution(2)
	if len(d.Largest) != 2 {
		t.Errorf("Largest has %d entries, want 2", len(d.Largest))
	}

	d = blocks.Distribution(0)
	if len(d.Largest) != 0 {
		t.Errorf("Largest has %d entries, want 0", len(d.Largest))
	}
}

func TestDistributionEmpty(t *testing.T) {
	c := buildCatalog(t, nil)
	v, _, _ := ExtractKeys(c, PrefixKey(3))
	blocks := Partition(c, NewScanAssigner(v))

	d := blocks.Distribution(5)
	if d.Blocks != 0 || d.MeanSize != 0 || len(d.Largest) != 0 {
		t.Errorf("empty distribution not zeroed: %+v", d)
	}
}

package entity

// ResourceCounters holds the running totals for every resource category the
// sizing report covers. It is initialized to zero, mutated by addition only
// and read once at the end of a run to render the report.
type ResourceCounters struct {
	EC2Instances          int
	RDSInstances          int
	RedshiftClusters      int
	ClassicLoadBalancers  int
	LoadBalancersV2       int
	NATGateways           int
	ECSFargateClusters    int
	FargateRunningTasks   int
	FargateActiveServices int
	TaskDefinitions       int
	LambdaFunctions       int
}

// Add merges the counts collected for a single (profile, region) pair into
// the running totals.
func (c *ResourceCounters) Add(rc RegionCounts) {
	c.EC2Instances += rc.EC2Instances
	c.RDSInstances += rc.RDSInstances
	c.RedshiftClusters += rc.RedshiftClusters
	c.ClassicLoadBalancers += rc.ClassicLoadBalancers
	c.LoadBalancersV2 += rc.LoadBalancersV2
	c.NATGateways += rc.NATGateways
	c.ECSFargateClusters += rc.ECSFargateClusters
	c.FargateRunningTasks += rc.FargateRunningTasks
	c.FargateActiveServices += rc.FargateActiveServices
	c.TaskDefinitions += rc.TaskDefinitions
	c.LambdaFunctions += rc.LambdaFunctions
}

// BillableTotal returns the sum of the six categories the sizing service
// bills on. Container and serverless categories are never part of it.
func (c ResourceCounters) BillableTotal() int {
	return c.EC2Instances +
		c.RDSInstances +
		c.RedshiftClusters +
		c.ClassicLoadBalancers +
		c.LoadBalancersV2 +
		c.NATGateways
}

// RegionCounts carries the per-category counts of one region visit before
// they are folded into the global totals.
type RegionCounts struct {
	Profile string
	Region  string

	EC2Instances          int
	RDSInstances          int
	RedshiftClusters      int
	ClassicLoadBalancers  int
	LoadBalancersV2       int
	NATGateways           int
	ECSFargateClusters    int
	FargateRunningTasks   int
	FargateActiveServices int
	TaskDefinitions       int
	LambdaFunctions       int
}

package ledger

// Contract interfaces used by the gateway. Only the functions the gateway calls are
// declared; the deployed contracts expose more.

const factoryABI = `[
{"type":"function","name":"owner","stateMutability":"view","inputs":[],"outputs":[{"name":"","type":"address"}]},
{"type":"function","name":"isRegistered","stateMutability":"view","inputs":[{"name":"account","type":"address"}],"outputs":[{"name":"","type":"bool"}]},
{"type":"function","name":"isAuthorized","stateMutability":"view","inputs":[{"name":"account","type":"address"}],"outputs":[{"name":"","type":"bool"}]},
{"type":"function","name":"authorize","stateMutability":"nonpayable","inputs":[{"name":"account","type":"address"}],"outputs":[]},
{"type":"function","name":"register","stateMutability":"nonpayable","inputs":[],"outputs":[]},
{"type":"function","name":"calls","stateMutability":"view","inputs":[{"name":"callId","type":"bytes32"}],"outputs":[{"name":"creator","type":"address"},{"name":"cfp","type":"address"}]},
{"type":"function","name":"creatorsCount","stateMutability":"view","inputs":[],"outputs":[{"name":"","type":"uint256"}]},
{"type":"function","name":"creators","stateMutability":"view","inputs":[{"name":"index","type":"uint256"}],"outputs":[{"name":"","type":"address"}]},
{"type":"function","name":"createdByCount","stateMutability":"view","inputs":[{"name":"creator","type":"address"}],"outputs":[{"name":"","type":"uint256"}]},
{"type":"function","name":"createdBy","stateMutability":"view","inputs":[{"name":"creator","type":"address"},{"name":"index","type":"uint256"}],"outputs":[{"name":"","type":"bytes32"}]},
{"type":"function","name":"create","stateMutability":"nonpayable","inputs":[{"name":"callId","type":"bytes32"},{"name":"timestamp","type":"uint256"}],"outputs":[{"name":"","type":"address"}]},
{"type":"function","name":"createFor","stateMutability":"nonpayable","inputs":[{"name":"callId","type":"bytes32"},{"name":"timestamp","type":"uint256"},{"name":"creator","type":"address"}],"outputs":[{"name":"","type":"address"}]}
]`

const cfpABI = `[
{"type":"function","name":"closingTime","stateMutability":"view","inputs":[],"outputs":[{"name":"","type":"uint256"}]},
{"type":"function","name":"proposalData","stateMutability":"view","inputs":[{"name":"proposal","type":"bytes32"}],"outputs":[{"name":"sender","type":"address"},{"name":"blockNumber","type":"uint256"},{"name":"timestamp","type":"uint256"}]},
{"type":"function","name":"proposalCount","stateMutability":"view","inputs":[],"outputs":[{"name":"","type":"uint256"}]},
{"type":"function","name":"registerProposal","stateMutability":"nonpayable","inputs":[{"name":"proposal","type":"bytes32"}],"outputs":[]}
]`

const registryABI = `[
{"type":"function","name":"owner","stateMutability":"view","inputs":[{"name":"node","type":"bytes32"}],"outputs":[{"name":"","type":"address"}]},
{"type":"function","name":"resolver","stateMutability":"view","inputs":[{"name":"node","type":"bytes32"}],"outputs":[{"name":"","type":"address"}]},
{"type":"function","name":"setResolver","stateMutability":"nonpayable","inputs":[{"name":"node","type":"bytes32"},{"name":"resolver","type":"address"}],"outputs":[]}
]`

const resolverABI = `[
{"type":"function","name":"addr","stateMutability":"view","inputs":[{"name":"node","type":"bytes32"}],"outputs":[{"name":"","type":"address"}]},
{"type":"function","name":"setAddr","stateMutability":"nonpayable","inputs":[{"name":"node","type":"bytes32"},{"name":"addr","type":"address"}],"outputs":[]},
{"type":"function","name":"text","stateMutability":"view","inputs":[{"name":"node","type":"bytes32"},{"name":"key","type":"string"}],"outputs":[{"name":"","type":"string"}]},
{"type":"function","name":"setText","stateMutability":"nonpayable","inputs":[{"name":"node","type":"bytes32"},{"name":"key","type":"string"},{"name":"value","type":"string"}],"outputs":[]},
{"type":"function","name":"name","stateMutability":"view","inputs":[{"name":"node","type":"bytes32"}],"outputs":[{"name":"","type":"string"}]}
]`

const reverseRegistrarABI = `[
{"type":"function","name":"node","stateMutability":"pure","inputs":[{"name":"addr","type":"address"}],"outputs":[{"name":"","type":"bytes32"}]},
{"type":"function","name":"setNameForAddress","stateMutability":"nonpayable","inputs":[{"name":"addr","type":"address"},{"name":"name","type":"string"}],"outputs":[{"name":"","type":"bytes32"}]}
]`

const registrarABI = `[
{"type":"function","name":"register","stateMutability":"nonpayable","inputs":[{"name":"label","type":"bytes32"},{"name":"owner","type":"address"}],"outputs":[]}
]`
